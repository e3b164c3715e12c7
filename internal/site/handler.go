package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for storefront content
type Handler struct {
	service *Service
}

// NewHandler creates a new site handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetContent returns the localized storefront copy
// GET /api/v1/site/content?lang=en
func (h *Handler) GetContent(c *gin.Context) {
	common.SuccessResponse(c, h.service.Content(middleware.GetLanguage(c)))
}

// GetCatalog returns states, property types, categories and price ranges
// GET /api/v1/site/catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	common.SuccessResponse(c, h.service.Catalog(middleware.GetLanguage(c)))
}

// RecordVisit counts a storefront visit
// POST /api/v1/site/visits
func (h *Handler) RecordVisit(c *gin.Context) {
	n, err := h.service.Visit(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Warn("visit counter unavailable", zap.Error(err))
		common.ErrorResponse(c, http.StatusServiceUnavailable, "visit counter unavailable")
		return
	}
	common.SuccessResponse(c, gin.H{"visits": n})
}

// GetVisits returns the visit total
// GET /api/v1/site/visits
func (h *Handler) GetVisits(c *gin.Context) {
	n, err := h.service.Visits(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context()).Warn("visit counter unavailable", zap.Error(err))
		common.ErrorResponse(c, http.StatusServiceUnavailable, "visit counter unavailable")
		return
	}
	common.SuccessResponse(c, gin.H{"visits": n})
}

// GetWhatsApp returns the broker's chat link
// GET /api/v1/site/whatsapp?text=Olá
func (h *Handler) GetWhatsApp(c *gin.Context) {
	common.SuccessResponse(c, gin.H{"url": h.service.WhatsAppLink(c.Query("text"))})
}

// RegisterRoutes registers the public site routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/site")
	{
		api.GET("/content", h.GetContent)
		api.GET("/catalog", h.GetCatalog)
		api.GET("/visits", h.GetVisits)
		api.POST("/visits", h.RecordVisit)
		api.GET("/whatsapp", h.GetWhatsApp)
	}
}
