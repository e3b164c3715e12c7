package properties

import (
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"github.com/leandrocorretor/realty/pkg/pagination"
	"github.com/leandrocorretor/realty/pkg/validation"
)

// Handler handles HTTP requests for property listings
type Handler struct {
	service *Service
}

// NewHandler creates a new property handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// uploadRequest is the JSON form of POST /api/v1/admin/uploads
type uploadRequest struct {
	PropertyID string   `json:"property_id" form:"property_id" validate:"omitempty,uuid"`
	DataURLs   []string `json:"data_urls" form:"data_urls" validate:"max=10,dive,required"`
}

// ========================================
// PUBLIC ENDPOINTS
// ========================================

// GetFeatured returns the storefront carousel
// GET /api/v1/properties/featured?category=venda&type=Casa&city=Santos&price=200001-400000
func (h *Handler) GetFeatured(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}

	listing, err := h.service.GetFeatured(c.Request.Context(), *filters)
	if err != nil {
		common.HandleError(c, err, "failed to get featured properties")
		return
	}

	common.SuccessResponse(c, gin.H{
		"properties":    listing.Properties,
		"facets":        listing.Facets,
		"total":         listing.Total,
		"price_options": PriceOptions,
	})
}

// GetProperty returns a single listing
// GET /api/v1/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err, "failed to get property")
		return
	}
	common.SuccessResponse(c, p)
}

// ========================================
// ADMIN ENDPOINTS
// ========================================

// ListProperties returns a filtered page of listings, newest first
// GET /api/v1/admin/properties?search=centro&state=SP&limit=20&offset=0
func (h *Handler) ListProperties(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	params := pagination.ParseParams(c)

	list, total, err := h.service.GetProperties(c.Request.Context(), filters, params.Limit, params.Offset)
	if err != nil {
		common.HandleError(c, err, "failed to list properties")
		return
	}

	meta := pagination.BuildMeta(params.Limit, params.Offset, int64(total))
	common.SuccessResponseWithMeta(c, gin.H{"properties": list}, meta)
}

// GetStateCounts returns the number of listings per state
// GET /api/v1/admin/properties/state-counts
func (h *Handler) GetStateCounts(c *gin.Context) {
	counts, err := h.service.StateCounts(c.Request.Context())
	if err != nil {
		common.HandleError(c, err, "failed to count properties")
		return
	}
	common.SuccessResponse(c, gin.H{"counts": counts})
}

// CreateProperty creates a listing
// POST /api/v1/admin/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	var in PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondWithValidationError(c, err)
		return
	}

	p, err := h.service.AddProperty(c.Request.Context(), &in)
	if err != nil {
		common.HandleError(c, err, "failed to create property")
		return
	}
	common.CreatedResponse(c, p)
}

// UpdateProperty replaces a listing
// PUT /api/v1/admin/properties/:id
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in PropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.RespondWithValidationError(c, err)
		return
	}

	p, err := h.service.UpdateProperty(c.Request.Context(), id, &in)
	if err != nil {
		common.HandleError(c, err, "failed to update property")
		return
	}
	common.SuccessResponse(c, p)
}

// DeleteProperty removes a listing
// DELETE /api/v1/admin/properties/:id
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		common.HandleError(c, err, "failed to delete property")
		return
	}
	common.NoContentResponse(c)
}

// UploadImages stores photos ahead of a save and returns their URLs.
// Accepts multipart images[] files and/or a JSON body of data URLs.
// POST /api/v1/admin/uploads
func (h *Handler) UploadImages(c *gin.Context) {
	var (
		req   uploadRequest
		files []*multipart.FileHeader
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			middleware.RespondWithValidationError(c, err)
			return
		}
		files = append(form.File["images[]"], form.File["images"]...)
		req.PropertyID = c.PostForm("property_id")
		req.DataURLs = form.Value["data_urls"]
		if err := validation.ValidateStruct(&req); err != nil {
			middleware.RespondWithValidationError(c, err)
			return
		}
	} else if !middleware.ValidateAndBind(c, &req) {
		return
	}

	propertyID := uuid.Nil
	if req.PropertyID != "" {
		propertyID = uuid.MustParse(req.PropertyID)
	}

	urls, err := h.service.UploadImages(c.Request.Context(), propertyID, files, req.DataURLs)
	if err != nil {
		common.HandleError(c, err, "failed to upload images")
		return
	}
	common.CreatedResponse(c, gin.H{"urls": urls})
}

func bindFilters(c *gin.Context) (*Filters, bool) {
	filters := &Filters{}
	if err := c.ShouldBindQuery(filters); err != nil {
		middleware.RespondWithValidationError(c, err)
		return nil, false
	}
	filters.State = strings.ToUpper(strings.TrimSpace(filters.State))
	filters.Category = strings.ToLower(strings.TrimSpace(filters.Category))
	if err := validation.ValidateStruct(filters); err != nil {
		middleware.RespondWithValidationError(c, err)
		return nil, false
	}
	if err := filters.Check(); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return filters, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid property id")
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes registers property routes. auth guards the admin group.
func (h *Handler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	public := r.Group("/api/v1/properties")
	{
		public.GET("/featured", h.GetFeatured)
		public.GET("/:id", h.GetProperty)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(auth)
	{
		admin.GET("/properties", h.ListProperties)
		admin.GET("/properties/state-counts", h.GetStateCounts)
		admin.POST("/properties", h.CreateProperty)
		admin.PUT("/properties/:id", h.UpdateProperty)
		admin.DELETE("/properties/:id", h.DeleteProperty)
		admin.POST("/uploads", h.UploadImages)
	}
}
