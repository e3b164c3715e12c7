package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAPITimeout(t *testing.T) {
	r := gin.New()
	r.Use(APITimeout(20 * time.Millisecond))
	r.GET("/api/v1/admin/leads", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.True(t, hasDeadline)
		select {
		case <-c.Request.Context().Done():
			c.String(http.StatusGatewayTimeout, "deadline")
		case <-time.After(time.Second):
			c.String(http.StatusOK, "late lead list")
		}
	})
	r.GET("/dashboard", func(c *gin.Context) {
		_, hasDeadline := c.Request.Context().Deadline()
		assert.False(t, hasDeadline)
		c.String(http.StatusOK, "<page>")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/leads", nil))
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Equal(t, "deadline", w.Body.String())

	// the next request must not carry any output of the timed-out one
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<page>", w.Body.String())
}

func TestAPITimeout_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(APITimeout(0))
	r.GET("/api/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSentry_NoClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(CorrelationID(), Sentry(), SentryScope())
	r.GET("/ping", func(c *gin.Context) {
		assert.Nil(t, sentrygin.GetHubFromContext(c))
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSurface(t *testing.T) {
	tests := map[string]string{
		"/api/v1/leads":       "api",
		"/media/properties/x": "media",
		"/healthz":            "ops",
		"/metrics":            "ops",
		"/dashboard":          "page",
		"/":                   "page",
	}
	for path, want := range tests {
		assert.Equal(t, want, surface(path), path)
	}
}
