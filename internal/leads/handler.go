package leads

import (
	"github.com/gin-gonic/gin"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/pagination"
)

// Handler handles HTTP requests for contact requests
type Handler struct {
	service *Service
}

// NewHandler creates a new leads handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SubmitLead stores a storefront contact request
// POST /api/v1/leads
func (h *Handler) SubmitLead(c *gin.Context) {
	var in LeadInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondWithValidationError(c, err)
		return
	}

	lead, err := h.service.Submit(c.Request.Context(), &in)
	if err != nil {
		common.HandleError(c, err, "failed to submit contact request")
		return
	}

	common.CreatedResponse(c, gin.H{
		"id":      lead.ID,
		"message": i18n.Translate("lead.thanks", middleware.GetLanguage(c)),
	})
}

// ListLeads returns received contact requests, newest first
// GET /api/v1/admin/leads?limit=20&offset=0
func (h *Handler) ListLeads(c *gin.Context) {
	params := pagination.ParseParams(c)

	list, total, err := h.service.List(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		common.HandleError(c, err, "failed to list contact requests")
		return
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, int64(total))
	common.SuccessResponseWithMeta(c, gin.H{"leads": list}, meta)
}

// RegisterRoutes registers lead routes. auth guards the admin listing.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/api/v1/leads", h.SubmitLead)

	admin := r.Group("/api/v1/admin")
	admin.Use(auth)
	{
		admin.GET("/leads", h.ListLeads)
	}
}
