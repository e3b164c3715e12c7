package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/middleware"
)

// CookieOptions controls the session cookie
type CookieOptions struct {
	Name   string
	Secure bool
}

// Handler handles HTTP requests for back-office authentication
type Handler struct {
	service *Service
	cookie  CookieOptions
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, cookie CookieOptions) *Handler {
	return &Handler{service: service, cookie: cookie}
}

// GoogleLogin exchanges a Google ID token for a session
// POST /api/v1/auth/google
func (h *Handler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if !h.service.BypassEnabled() && !middleware.ValidateAndBind(c, &req) {
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Credential)
	if err != nil {
		common.HandleError(c, err, "login failed")
		return
	}

	SetSessionCookie(c, h.cookie, session.Token, session.ExpiresAt)
	common.SuccessResponse(c, session)
}

// Logout revokes the current session and clears the cookie
// POST /api/v1/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.SessionToken(c, h.cookie.Name)); err != nil {
		common.HandleError(c, err, "logout failed")
		return
	}
	ClearSessionCookie(c, h.cookie)
	common.SuccessResponse(c, gin.H{"logged_out": true})
}

// Me returns the logged-in admin
// GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		common.ErrorResponse(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	common.SuccessResponse(c, admin)
}

// ListUsers returns the e-mails allowed into the back office
// GET /api/v1/admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		common.HandleError(c, err, "failed to list users")
		return
	}
	common.SuccessResponse(c, gin.H{"users": users})
}

// SetSessionCookie stores token in an HttpOnly cookie that expires with the session
func SetSessionCookie(c *gin.Context, opts CookieOptions, token string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, token, maxAge, "/", "", opts.Secure, true)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context, opts CookieOptions) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(opts.Name, "", -1, "/", "", opts.Secure, true)
}

// RegisterRoutes registers auth routes. auth guards the routes that need a session.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/google", h.GoogleLogin)
		api.POST("/logout", h.Logout)
		api.GET("/me", auth, h.Me)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(auth)
	{
		admin.GET("/users", h.ListUsers)
	}
}
