// Package web serves the server-rendered storefront and back-office pages.
package web

import (
	"context"
	"html/template"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/auth"
	"github.com/leandrocorretor/realty/internal/leads"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/internal/site"
	"github.com/leandrocorretor/realty/pkg/catalog"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/models"
	"github.com/leandrocorretor/realty/pkg/pagination"
	"go.uber.org/zap"
)

const (
	loginPath     = "/admin"
	dashboardPath = "/dashboard"
	pageSize      = pagination.DefaultLimit
)

// PropertyService is the listing API the pages drive
type PropertyService interface {
	GetFeatured(ctx context.Context, filters properties.Filters) (*properties.FeaturedListing, error)
	GetProperties(ctx context.Context, filters *properties.Filters, limit, offset int) ([]properties.Property, int, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*properties.Property, error)
	AddProperty(ctx context.Context, in *properties.PropertyInput) (*properties.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, in *properties.PropertyInput) (*properties.Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
	UploadImages(ctx context.Context, propertyID uuid.UUID, files []*multipart.FileHeader, dataURLs []string) ([]string, error)
	DiscardImages(ctx context.Context, urls []string)
	StateCounts(ctx context.Context) (map[string]int, error)
}

// SiteService provides storefront copy and the visit counter
type SiteService interface {
	Content(lang string) *site.Content
	Catalog(lang string) *site.Catalog
	WhatsAppLink(text string) string
	Visit(ctx context.Context) (int64, error)
}

// LeadService stores contact requests
type LeadService interface {
	Submit(ctx context.Context, in *leads.LeadInput) (*leads.Lead, error)
}

// SessionService logs admins in and out
type SessionService interface {
	middleware.SessionVerifier
	Login(ctx context.Context, credential string) (*auth.Session, error)
	Logout(ctx context.Context, token string) error
	BypassEnabled() bool
}

// Options configures the pages
type Options struct {
	GoogleClientID string
	Cookie         auth.CookieOptions
}

// Handler renders HTML pages
type Handler struct {
	properties PropertyService
	site       SiteService
	leads      LeadService
	sessions   SessionService
	opts       Options
	pages      map[string]*template.Template
}

// NewHandler creates a new page handler
func NewHandler(props PropertyService, siteSvc SiteService, leadSvc LeadService, sessions SessionService, opts Options) *Handler {
	h := &Handler{
		properties: props,
		site:       siteSvc,
		leads:      leadSvc,
		sessions:   sessions,
		opts:       opts,
	}
	funcs := baseFuncs()
	funcs["whatsapp"] = siteSvc.WhatsAppLink
	h.pages = parsePages(funcs)
	return h
}

// ========================================
// STOREFRONT
// ========================================

type leadForm struct {
	Input  leads.LeadInput
	Errors map[string]string
	Sent   bool
}

type storefrontData struct {
	layoutData
	Content     *site.Content
	Catalog     *site.Catalog
	Listing     *properties.FeaturedListing
	Filters     properties.Filters
	FilterError bool
	Visits      int64
	Lead        leadForm
}

// Storefront renders the home page
// GET /?category=venda&type=Casa&city=Santos&price=0-200000&lang=en
func (h *Handler) Storefront(c *gin.Context) {
	data, err := h.storefront(c, leadForm{Sent: c.Query("sent") == "1"})
	if err != nil {
		h.renderError(c, err)
		return
	}

	if n, err := h.site.Visit(c.Request.Context()); err != nil {
		logger.WithContext(c.Request.Context()).Warn("visit counter unavailable", zap.Error(err))
	} else {
		data.Visits = n
	}
	h.render(c, http.StatusOK, pageStorefront, data)
}

// SubmitContact handles the storefront contact form
// POST /contact
func (h *Handler) SubmitContact(c *gin.Context) {
	in := leads.LeadInput{
		Name:       c.PostForm("name"),
		Phone:      c.PostForm("phone"),
		Email:      c.PostForm("email"),
		Message:    c.PostForm("message"),
		PropertyID: c.PostForm("property_id"),
	}

	if _, err := h.leads.Submit(c.Request.Context(), &in); err != nil {
		appErr, ok := common.AsAppError(err)
		if !ok || appErr.Code != http.StatusBadRequest {
			h.renderError(c, err)
			return
		}
		fields := appErr.Fields
		if len(fields) == 0 {
			fields = map[string]string{"_": appErr.Message}
		}
		data, err := h.storefront(c, leadForm{Input: in, Errors: fields})
		if err != nil {
			h.renderError(c, err)
			return
		}
		h.render(c, http.StatusBadRequest, pageStorefront, data)
		return
	}

	c.Redirect(http.StatusSeeOther, "/?sent=1#contact")
}

func (h *Handler) storefront(c *gin.Context, lead leadForm) (*storefrontData, error) {
	ctx := c.Request.Context()
	lang := middleware.GetLanguage(c)

	filters, ok := queryFilters(c)
	listing, err := h.properties.GetFeatured(ctx, filters)
	if err != nil {
		return nil, err
	}

	content := h.site.Content(lang)
	return &storefrontData{
		layoutData:  newLayout(c, lang, content.About.Name, nil),
		Content:     content,
		Catalog:     h.site.Catalog(lang),
		Listing:     listing,
		Filters:     filters,
		FilterError: !ok,
		Lead:        lead,
	}, nil
}

// queryFilters reads the storefront filter bar. Malformed filters are dropped.
func queryFilters(c *gin.Context) (properties.Filters, bool) {
	f := properties.Filters{
		Category:     strings.ToLower(strings.TrimSpace(c.Query("category"))),
		Type:         strings.TrimSpace(c.Query("type")),
		City:         strings.TrimSpace(c.Query("city")),
		Neighborhood: strings.TrimSpace(c.Query("neighborhood")),
		Price:        strings.TrimSpace(c.Query("price")),
	}

	if f.Category != "" && !catalog.IsCategory(f.Category) {
		return properties.Filters{}, false
	}
	if err := f.Check(); err != nil {
		return properties.Filters{}, false
	}
	return f, true
}

// ========================================
// LOGIN
// ========================================

type loginData struct {
	layoutData
	GoogleClientID string
	Bypass         bool
	Error          string
}

// LoginPage renders the restricted-area sign in
// GET /admin
func (h *Handler) LoginPage(c *gin.Context) {
	if _, ok := middleware.GetAdmin(c); ok {
		c.Redirect(http.StatusSeeOther, dashboardPath)
		return
	}
	h.renderLogin(c, http.StatusOK, "")
}

// Login exchanges the Google credential posted by the sign-in button for a session
// POST /admin/login
func (h *Handler) Login(c *gin.Context) {
	credential := c.PostForm("credential")
	if credential == "" && !h.sessions.BypassEnabled() {
		h.renderLogin(c, http.StatusBadRequest, i18n.Translate("auth.error", middleware.GetLanguage(c)))
		return
	}

	session, err := h.sessions.Login(c.Request.Context(), credential)
	if err != nil {
		status, msg := http.StatusInternalServerError, i18n.Translate("auth.error", middleware.GetLanguage(c))
		if appErr, ok := common.AsAppError(err); ok {
			status, msg = appErr.Code, appErr.Message
		} else {
			logger.WithContext(c.Request.Context()).Error("login failed", zap.Error(err))
		}
		h.renderLogin(c, status, msg)
		return
	}

	auth.SetSessionCookie(c, h.opts.Cookie, session.Token, session.ExpiresAt)
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// Logout ends the session
// POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context(), middleware.SessionToken(c, h.opts.Cookie.Name)); err != nil {
		logger.WithContext(c.Request.Context()).Warn("logout failed", zap.Error(err))
	}
	auth.ClearSessionCookie(c, h.opts.Cookie)
	c.Redirect(http.StatusSeeOther, loginPath)
}

func (h *Handler) renderLogin(c *gin.Context, status int, errMsg string) {
	lang := middleware.GetLanguage(c)
	h.render(c, status, pageLogin, &loginData{
		layoutData:     newLayout(c, lang, i18n.Translate("admin.restricted_area", lang), nil),
		GoogleClientID: h.opts.GoogleClientID,
		Bypass:         h.sessions.BypassEnabled(),
		Error:          errMsg,
	})
}

// ========================================
// DASHBOARD
// ========================================

type stateCount struct {
	catalog.State
	Count int
}

type dashboardData struct {
	layoutData
	Properties []properties.Property
	Total      int
	Search     string
	State      string
	States     []catalog.State
	Counts     []stateCount
	Page       int
	PrevURL    string
	NextURL    string
	Error      string
}

// Dashboard lists the listings with search and a state filter
// GET /dashboard?search=centro&state=SP&page=2
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	lang := middleware.GetLanguage(c)

	filters := &properties.Filters{Search: strings.TrimSpace(c.Query("search"))}
	if st := strings.ToUpper(strings.TrimSpace(c.Query("state"))); catalog.IsState(st) {
		filters.State = st
	}
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	list, total, err := h.properties.GetProperties(ctx, filters, pageSize, (page-1)*pageSize)
	if err != nil {
		h.renderError(c, err)
		return
	}
	counts, err := h.properties.StateCounts(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := &dashboardData{
		layoutData: newLayout(c, lang, i18n.Translate("admin.dashboard", lang), currentAdmin(c)),
		Properties: list,
		Total:      total,
		Search:     filters.Search,
		State:      filters.State,
		States:     catalog.BrazilianStates,
		Counts:     orderedCounts(counts),
		Page:       page,
	}
	if c.Query("error") == "delete" {
		data.Error = i18n.Translate("admin.delete_error", lang)
	}
	if page > 1 {
		data.PrevURL = pageURL(c, page-1)
	}
	if page*pageSize < total {
		data.NextURL = pageURL(c, page+1)
	}
	h.render(c, http.StatusOK, pageDashboard, data)
}

// orderedCounts lists states with at least one listing in catalogue order
func orderedCounts(counts map[string]int) []stateCount {
	out := make([]stateCount, 0, len(counts))
	for _, st := range catalog.BrazilianStates {
		if n := counts[st.Abbr]; n > 0 {
			out = append(out, stateCount{State: st, Count: n})
		}
	}
	return out
}

func pageURL(c *gin.Context, page int) string {
	q := c.Request.URL.Query()
	q.Set("page", strconv.Itoa(page))
	return c.Request.URL.Path + "?" + q.Encode()
}

// DeleteProperty removes a listing and returns to the dashboard
// POST /dashboard/properties/:id/delete
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, dashboardPath+"?error=delete")
		return
	}
	if err := h.properties.DeleteProperty(c.Request.Context(), id); err != nil {
		logger.WithContext(c.Request.Context()).Warn("failed to delete property", zap.String("property_id", id.String()), zap.Error(err))
		c.Redirect(http.StatusSeeOther, dashboardPath+"?error=delete")
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// ========================================
// ERRORS
// ========================================

func (h *Handler) renderError(c *gin.Context, err error) {
	if appErr, ok := common.AsAppError(err); ok && appErr.Code < http.StatusInternalServerError {
		c.String(appErr.Code, appErr.Message)
		return
	}
	logger.WithContext(c.Request.Context()).Error("page failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "internal server error")
}

// currentAdmin returns the admin set by the auth middleware
func currentAdmin(c *gin.Context) *models.Admin {
	admin, _ := middleware.GetAdmin(c)
	return admin
}

// RegisterRoutes registers the page routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	requireAdmin := middleware.AuthMiddleware(h.sessions, middleware.AuthConfig{
		CookieName: h.opts.Cookie.Name,
		LoginPath:  loginPath,
	})

	r.GET("/", h.Storefront)
	r.POST("/contact", h.SubmitContact)

	r.GET(loginPath, middleware.OptionalAuth(h.sessions, h.opts.Cookie.Name), h.LoginPage)
	r.POST(loginPath+"/login", h.Login)
	r.POST("/logout", h.Logout)

	dash := r.Group(dashboardPath)
	dash.Use(requireAdmin)
	{
		dash.GET("", h.Dashboard)
		dash.GET("/properties/new", h.NewPropertyForm)
		dash.POST("/properties", h.CreateProperty)
		dash.GET("/properties/:id/edit", h.EditPropertyForm)
		dash.POST("/properties/:id", h.UpdateProperty)
		dash.POST("/properties/:id/delete", h.DeleteProperty)
	}
}
