package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/models"
	"go.uber.org/zap"
)

// AdminKey is the gin context key holding the authenticated *models.Admin
const AdminKey = "admin"

// SessionVerifier validates a session token and returns the admin it belongs to
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*models.Admin, error)
}

// AuthConfig configures AuthMiddleware
type AuthConfig struct {
	// CookieName is the session cookie read when no bearer token is sent
	CookieName string
	// LoginPath, when set, makes HTML requests redirect there instead of getting a 401
	LoginPath string
}

// AuthMiddleware requires a valid back-office session
func AuthMiddleware(verifier SessionVerifier, cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := verifier.VerifySession(c.Request.Context(), SessionToken(c, cfg.CookieName))
		if err != nil || admin == nil {
			if err != nil {
				logger.WithContext(c.Request.Context()).Debug("session rejected", zap.Error(err))
			}
			if cfg.LoginPath != "" && wantsHTML(c) {
				c.Redirect(http.StatusSeeOther, cfg.LoginPath)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
			}
			c.Abort()
			return
		}

		setAdmin(c, admin)
		c.Next()
	}
}

// OptionalAuth attaches the admin when a valid session is present and never rejects
func OptionalAuth(verifier SessionVerifier, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, err := verifier.VerifySession(c.Request.Context(), SessionToken(c, cookieName)); err == nil && admin != nil {
			setAdmin(c, admin)
		}
		c.Next()
	}
}

// SessionToken returns the bearer token, or the session cookie when no header is sent
func SessionToken(c *gin.Context, cookieName string) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil {
			return token
		}
	}
	return ""
}

// GetAdmin returns the admin stored by AuthMiddleware
func GetAdmin(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(AdminKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok && admin != nil
}

func setAdmin(c *gin.Context, admin *models.Admin) {
	c.Set(AdminKey, admin)
	c.Request = c.Request.WithContext(logger.ContextWithAdmin(c.Request.Context(), admin.Email))
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.Scope().SetUser(sentry.User{Email: admin.Email, Name: admin.Name})
	}
}

// wantsHTML reports whether the client is a browser navigating pages rather than an API caller
func wantsHTML(c *gin.Context) bool {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html") || c.GetHeader("Accept") == ""
}
