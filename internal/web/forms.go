package web

import (
	"mime/multipart"
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/images"
	"github.com/leandrocorretor/realty/internal/properties"
	"github.com/leandrocorretor/realty/internal/site"
	"github.com/leandrocorretor/realty/pkg/common"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/logger"
	"github.com/leandrocorretor/realty/pkg/middleware"
	"go.uber.org/zap"
)

// maxFormMemory is how much of a multipart upload is buffered in memory
const maxFormMemory = 32 << 20

type formData struct {
	layoutData
	Heading   string
	Action    string
	Input     properties.PropertyInput
	MainImage string
	Catalog   *site.Catalog
	MaxImages int
	Errors    map[string]string
	Error     string
}

// NewPropertyForm renders an empty listing form
// GET /dashboard/properties/new
func (h *Handler) NewPropertyForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, uuid.Nil, properties.PropertyInput{}, nil, "")
}

// EditPropertyForm renders the form filled with an existing listing
// GET /dashboard/properties/:id/edit
func (h *Handler) EditPropertyForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "property not found")
		return
	}
	p, err := h.properties.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	h.renderForm(c, http.StatusOK, id, properties.InputFromProperty(p), nil, "")
}

// CreateProperty saves a new listing from the multipart form
// POST /dashboard/properties
func (h *Handler) CreateProperty(c *gin.Context) {
	h.saveProperty(c, uuid.Nil)
}

// UpdateProperty saves an edited listing from the multipart form
// POST /dashboard/properties/:id
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "property not found")
		return
	}
	h.saveProperty(c, id)
}

func (h *Handler) saveProperty(c *gin.Context, id uuid.UUID) {
	ctx := c.Request.Context()
	lang := middleware.GetLanguage(c)

	in, files, fields := parsePropertyForm(c, lang)
	if len(fields) == 0 {
		fields = validatePending(in, files, lang)
	}

	var uploaded []string
	if len(fields) == 0 && len(files) > 0 {
		urls, err := h.properties.UploadImages(ctx, id, files, nil)
		if err != nil {
			logger.WithContext(ctx).Warn("image upload failed", zap.Error(err))
			if appErr, ok := common.AsAppError(err); ok && len(appErr.Fields) > 0 {
				fields = appErr.Fields
			} else {
				fields = map[string]string{"image_urls": i18n.Translate("form.images.upload_failed", lang)}
			}
		} else {
			uploaded = urls
			in.ImageURLs = append(in.ImageURLs, urls...)
		}
	}
	if len(fields) > 0 {
		h.renderForm(c, http.StatusBadRequest, id, in, fields, "")
		return
	}

	var err error
	if id == uuid.Nil {
		_, err = h.properties.AddProperty(ctx, &in)
	} else {
		_, err = h.properties.UpdateProperty(ctx, id, &in)
	}
	if err != nil {
		if len(uploaded) > 0 {
			h.properties.DiscardImages(ctx, uploaded)
			in.ImageURLs = in.ImageURLs[:len(in.ImageURLs)-len(uploaded)]
		}
		appErr, ok := common.AsAppError(err)
		switch {
		case ok && len(appErr.Fields) > 0:
			h.renderForm(c, http.StatusBadRequest, id, in, appErr.Fields, "")
		case ok && appErr.Code == http.StatusNotFound:
			h.renderError(c, err)
		default:
			logger.WithContext(ctx).Error("failed to save property", zap.Error(err))
			h.renderForm(c, http.StatusInternalServerError, id, in, nil, i18n.Translate("admin.save_error", lang))
		}
		return
	}

	c.Redirect(http.StatusSeeOther, dashboardPath)
}

// validatePending checks the form as it would be saved, counting each
// attached file as a photo so nothing is uploaded for a form that fails
func validatePending(in properties.PropertyInput, files []*multipart.FileHeader, lang string) map[string]string {
	in.ImageURLs = append([]string(nil), in.ImageURLs...)
	for i := range files {
		in.ImageURLs = append(in.ImageURLs, "/pending/"+strconv.Itoa(i))
	}
	fields := in.Validate(lang)
	if fields == nil {
		return map[string]string{}
	}
	return fields
}

// parsePropertyForm reads the listing form. Kept photos arrive as image_urls,
// photos ticked in remove_images are dropped and main_image names the cover
// by URL. Numbers accept both "350000.50" and "350.000,50".
func parsePropertyForm(c *gin.Context, lang string) (properties.PropertyInput, []*multipart.FileHeader, map[string]string) {
	fields := map[string]string{}
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			fields["image_urls"] = i18n.Translate("form.images.upload_failed", lang)
		}
	}

	in := properties.PropertyInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Type:         c.PostForm("type"),
		Category:     c.PostForm("category"),
		Neighborhood: c.PostForm("neighborhood"),
		City:         c.PostForm("city"),
		State:        c.PostForm("state"),
		IsFeatured:   c.PostForm("is_featured") != "",
	}

	numbers := []struct {
		name string
		dest *float64
		key  string
	}{
		{"price", &in.Price, "form.price.positive"},
		{"area", &in.Area, "form.area.positive"},
		{"bedrooms", &in.Bedrooms, "form.bedrooms.integer"},
		{"bathrooms", &in.Bathrooms, "form.bathrooms.integer"},
	}
	for _, n := range numbers {
		v, ok := parseDecimal(c.PostForm(n.name))
		if !ok {
			fields[n.name] = i18n.Translate(n.key, lang)
			continue
		}
		*n.dest = v
	}

	main := c.PostForm("main_image")
	for _, u := range c.PostFormArray("image_urls") {
		if u == "" {
			continue
		}
		if u == main {
			in.MainImageIndex = len(in.ImageURLs)
		}
		in.ImageURLs = append(in.ImageURLs, u)
	}
	for _, u := range c.PostFormArray("remove_images") {
		if i := slices.Index(in.ImageURLs, u); i >= 0 {
			in.ImageURLs, in.MainImageIndex = images.RemoveImage(in.ImageURLs, in.MainImageIndex, i)
		}
	}

	var files []*multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		for _, fh := range form.File["images"] {
			if fh.Size > 0 {
				files = append(files, fh)
			}
		}
	}
	if len(in.ImageURLs)+len(files) > images.MaxImagesPerProperty {
		fields["image_urls"] = i18n.Translate("form.images.too_many", lang, images.MaxImagesPerProperty)
	}

	return in, files, fields
}

// parseDecimal accepts an empty value as zero and Brazilian thousands separators
func parseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "R$"))
	if s == "" {
		return 0, true
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (h *Handler) renderForm(c *gin.Context, status int, id uuid.UUID, in properties.PropertyInput, fields map[string]string, errMsg string) {
	lang := middleware.GetLanguage(c)

	heading, action := i18n.Translate("admin.add_property", lang), dashboardPath+"/properties"
	if id != uuid.Nil {
		heading, action = i18n.Translate("admin.edit_property", lang), dashboardPath+"/properties/"+id.String()
	}

	var main string
	if len(in.ImageURLs) > 0 {
		main = in.ImageURLs[images.ClampMainIndex(in.MainImageIndex, len(in.ImageURLs))]
	}

	h.render(c, status, pageForm, &formData{
		layoutData: newLayout(c, lang, heading, currentAdmin(c)),
		Heading:    heading,
		Action:     action,
		Input:      in,
		MainImage:  main,
		Catalog:    h.site.Catalog(lang),
		MaxImages:  images.MaxImagesPerProperty,
		Errors:     fields,
		Error:      errMsg,
	})
}
