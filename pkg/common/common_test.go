package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func TestAppError_WrapsCause(t *testing.T) {
	cause := errors.New("no rows")
	err := NewNotFoundError("property not found", cause)

	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.Equal(t, "property not found: no rows", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAsAppError(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", NewForbiddenError("access denied"))

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusBadRequest, "invalid property id")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := parseResponse(t, w)
	assert.False(t, response["success"].(bool))
	errInfo := response["error"].(map[string]interface{})
	assert.Equal(t, "invalid property id", errInfo["message"])
}

func TestAppErrorResponse_WithFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AppErrorResponse(c, NewValidationError(map[string]string{"title": "title is required"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := parseResponse(t, w)
	fields := response["error"].(map[string]interface{})["fields"].(map[string]interface{})
	assert.Equal(t, "title is required", fields["title"])
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app error", NewConflictError("already exists"), http.StatusConflict, "already exists"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "failed to save"},
		{"deadline", fmt.Errorf("list leads: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"wrapped deadline", NewAppError(http.StatusInternalServerError, "failed", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleError(c, tt.err, "failed to save")

			assert.Equal(t, tt.wantStatus, w.Code)
			response := parseResponse(t, w)
			assert.Equal(t, tt.wantMsg, response["error"].(map[string]interface{})["message"])
		})
	}
}

func TestSuccessResponseWithMeta(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponseWithMeta(c, gin.H{"properties": []string{}}, gin.H{"total": 0})

	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	assert.NotNil(t, response["meta"])
}

func TestHealthCheckWithDeps(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]func() error
		wantStatus int
	}{
		{
			name:       "all healthy",
			checks:     map[string]func() error{"postgres": func() error { return nil }},
			wantStatus: http.StatusOK,
		},
		{
			name: "one unhealthy",
			checks: map[string]func() error{
				"postgres": func() error { return nil },
				"redis":    func() error { return errors.New("connection refused") },
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health/ready", nil)

			HealthCheckWithDeps("realty", "1.0.0", tt.checks)(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body.Checks, len(tt.checks))
		})
	}
}
