package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testCookie = "realty_session"

func setupRouter(f *fixture) *gin.Engine {
	r := gin.New()
	h := NewHandler(f.svc, CookieOptions{Name: testCookie})
	h.RegisterRoutes(r, middleware.AuthMiddleware(f.svc, middleware.AuthConfig{CookieName: testCookie}))
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", testCookie)
	return nil
}

func TestHandler_GoogleLogin(t *testing.T) {
	f := newFixture(t, nil)
	f.verifier.On("Verify", mock.Anything, "id-token").Return(verified("owner@example.com"), nil)
	f.repo.On("TouchLogin", mock.Anything, "owner@example.com", fixedNow).Return(nil)
	r := setupRouter(f)

	w := postJSON(r, "/api/v1/auth/google", gin.H{"credential": "id-token"})

	require.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	var resp struct {
		Data Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, cookie.Value, resp.Data.Token)
	assert.Equal(t, "owner@example.com", resp.Data.Admin.Email)
}

func TestHandler_GoogleLogin_MissingCredential(t *testing.T) {
	f := newFixture(t, nil)
	r := setupRouter(f)

	w := postJSON(r, "/api/v1/auth/google", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.verifier.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestHandler_GoogleLogin_Denied(t *testing.T) {
	f := newFixture(t, nil)
	f.verifier.On("Verify", mock.Anything, "id-token").Return(verified("stranger@example.com"), nil)
	f.repo.On("IsAuthorized", mock.Anything, "stranger@example.com").Return(false, nil)
	f.repo.On("RegisterIfRoom", mock.Anything, "stranger@example.com", "Leandro", 2).Return(false, nil)
	r := setupRouter(f)

	w := postJSON(r, "/api/v1/auth/google", gin.H{"credential": "id-token"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestHandler_MeAndLogout(t *testing.T) {
	f := newFixture(t, nil)
	f.verifier.On("Verify", mock.Anything, "id-token").Return(verified("owner@example.com"), nil)
	f.repo.On("TouchLogin", mock.Anything, "owner@example.com", fixedNow).Return(nil)
	r := setupRouter(f)

	login := postJSON(r, "/api/v1/auth/google", gin.H{"credential": "id-token"})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(t, login)

	// Unauthenticated
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Bearer token
	var sessionID string
	{
		var resp struct {
			Data Session `json:"data"`
		}
		require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))
		claims, err := f.svc.parse(resp.Data.Token)
		require.NoError(t, err)
		sessionID = claims.ID
	}
	f.redis.ExpectExists(revokedKeyPrefix + sessionID).SetVal(0)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")

	// Logout clears the cookie
	f.redis.ExpectSet(revokedKeyPrefix+sessionID, "1", 12*time.Hour).SetVal("OK")
	w = postJSON(r, "/api/v1/auth/logout", nil, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	cleared := sessionCookie(t, w)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
}

func TestHandler_ListUsers(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.DevBypass = true })
	f.repo.On("List", mock.Anything).Return(nil, nil)
	r := setupRouter(f)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `"seeded":true`))
}
