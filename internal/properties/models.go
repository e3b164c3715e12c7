package properties

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/internal/images"
	"github.com/leandrocorretor/realty/pkg/catalog"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/validation"
)

// Property is a listing shown on the storefront and managed in the back office
type Property struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Type           string    `json:"type"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Neighborhood   string    `json:"neighborhood"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Location       string    `json:"location"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      int       `json:"bathrooms"`
	Area           float64   `json:"area"`
	ImageURLs      []string  `json:"image_urls"`
	MainImageIndex int       `json:"main_image_index"`
	IsFeatured     bool      `json:"is_featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MainImage returns the cover photo URL, or "" when the listing has none
func (p *Property) MainImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[images.ClampMainIndex(p.MainImageIndex, len(p.ImageURLs))]
}

// FormatLocation renders "neighborhood, city - UF", skipping empty parts
func FormatLocation(neighborhood, city, state string) string {
	var b strings.Builder
	b.WriteString(neighborhood)
	if city != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(city)
	}
	if state != "" {
		if b.Len() > 0 {
			b.WriteString(" - ")
		}
		b.WriteString(state)
	}
	return b.String()
}

// Upper bounds of the price NUMERIC(14,2), area NUMERIC(10,2) and room INTEGER columns.
// The validate tags on PropertyInput repeat them.
const (
	maxPrice = 1e12
	maxArea  = 1e8
	maxRooms = math.MaxInt32
)

// PropertyInput is the payload of the create and update operations
type PropertyInput struct {
	Title          string   `json:"title" form:"title" validate:"required,notblank,max=200"`
	Description    string   `json:"description" form:"description" validate:"required,notblank,max=5000"`
	Type           string   `json:"type" form:"type" validate:"required,notblank,max=100"`
	Category       string   `json:"category" form:"category" validate:"omitempty,property_category"`
	Price          float64  `json:"price" form:"price" validate:"gt=0,lt=1000000000000"`
	Neighborhood   string   `json:"neighborhood" form:"neighborhood" validate:"required,notblank,max=120"`
	City           string   `json:"city" form:"city" validate:"required,notblank,max=120"`
	State          string   `json:"state" form:"state" validate:"required,br_state"`
	Bedrooms       float64  `json:"bedrooms" form:"bedrooms" validate:"gte=0,lte=2147483647"`
	Bathrooms      float64  `json:"bathrooms" form:"bathrooms" validate:"gte=0,lte=2147483647"`
	Area           float64  `json:"area" form:"area" validate:"gt=0,lt=100000000"`
	ImageURLs      []string `json:"image_urls" form:"image_urls" validate:"min=1,max=10,dive,required"`
	MainImageIndex int      `json:"main_image_index" form:"main_image_index"`
	IsFeatured     bool     `json:"is_featured" form:"is_featured"`
}

// Normalize trims text fields, defaults the category and clamps the main image index
func (in *PropertyInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Type = strings.TrimSpace(in.Type)
	in.Neighborhood = strings.TrimSpace(in.Neighborhood)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.ToUpper(strings.TrimSpace(in.State))
	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	if in.Category == "" {
		in.Category = catalog.CategorySale
	}

	urls := make([]string, 0, len(in.ImageURLs))
	for _, u := range in.ImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	in.ImageURLs = urls
	in.MainImageIndex = images.ClampMainIndex(in.MainImageIndex, len(in.ImageURLs))
}

// fieldMessages maps a failing field to its localized message key
var fieldMessages = map[string]string{
	"title":        "form.title.required",
	"description":  "form.description.required",
	"type":         "form.type.required",
	"neighborhood": "form.neighborhood.required",
	"city":         "form.city.required",
	"category":     "form.category.invalid",
	"price":        "form.price.positive",
	"area":         "form.area.positive",
	"bedrooms":     "form.bedrooms.integer",
	"bathrooms":    "form.bathrooms.integer",
}

// Validate normalizes the input and returns per-field messages in lang, or nil when valid
func (in *PropertyInput) Validate(lang string) map[string]string {
	in.Normalize()

	fields := map[string]string{}
	if err := validation.ValidateStruct(in); err != nil {
		verr, ok := err.(*validation.ValidationError)
		if !ok {
			return map[string]string{"_": err.Error()}
		}
		for field := range verr.Errors {
			fields[messageField(field)] = messageFor(field, in, lang)
		}
	}

	if !isWholeNumber(in.Bedrooms) {
		fields["bedrooms"] = i18n.Translate("form.bedrooms.integer", lang)
	}
	if !isWholeNumber(in.Bathrooms) {
		fields["bathrooms"] = i18n.Translate("form.bathrooms.integer", lang)
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// messageField folds per-item errors such as image_urls[2] into their list field
func messageField(field string) string {
	if i := strings.Index(field, "["); i >= 0 {
		return field[:i]
	}
	return field
}

func messageFor(field string, in *PropertyInput, lang string) string {
	switch messageField(field) {
	case "state":
		if in.State == "" {
			return i18n.Translate("form.state.required", lang)
		}
		return i18n.Translate("form.state.invalid", lang)
	case "price":
		if in.Price >= maxPrice {
			return i18n.Translate("form.price.too_large", lang)
		}
	case "area":
		if in.Area >= maxArea {
			return i18n.Translate("form.area.too_large", lang)
		}
	case "bedrooms":
		if in.Bedrooms > maxRooms {
			return i18n.Translate("form.bedrooms.too_large", lang)
		}
	case "bathrooms":
		if in.Bathrooms > maxRooms {
			return i18n.Translate("form.bathrooms.too_large", lang)
		}
	case "image_urls":
		if len(in.ImageURLs) > images.MaxImagesPerProperty {
			return i18n.Translate("form.images.too_many", lang, images.MaxImagesPerProperty)
		}
		return i18n.Translate("form.images.required", lang)
	}
	if key, ok := fieldMessages[field]; ok {
		return i18n.Translate(key, lang)
	}
	return fmt.Sprintf("%s is invalid", field)
}

func isWholeNumber(v float64) bool {
	return v >= 0 && v == math.Trunc(v) && !math.IsInf(v, 0)
}

// ToProperty copies validated input onto p, keeping its identity and timestamps
func (in *PropertyInput) ToProperty(p *Property) {
	p.Title = in.Title
	p.Description = in.Description
	p.Type = in.Type
	p.Category = in.Category
	p.Price = in.Price
	p.Neighborhood = in.Neighborhood
	p.City = in.City
	p.State = in.State
	p.Location = FormatLocation(in.Neighborhood, in.City, in.State)
	p.Bedrooms = int(in.Bedrooms)
	p.Bathrooms = int(in.Bathrooms)
	p.Area = in.Area
	p.ImageURLs = append([]string(nil), in.ImageURLs...)
	p.MainImageIndex = images.ClampMainIndex(in.MainImageIndex, len(in.ImageURLs))
	p.IsFeatured = in.IsFeatured
}

// InputFromProperty builds the edit-form payload of an existing listing
func InputFromProperty(p *Property) PropertyInput {
	return PropertyInput{
		Title:          p.Title,
		Description:    p.Description,
		Type:           p.Type,
		Category:       p.Category,
		Price:          p.Price,
		Neighborhood:   p.Neighborhood,
		City:           p.City,
		State:          p.State,
		Bedrooms:       float64(p.Bedrooms),
		Bathrooms:      float64(p.Bathrooms),
		Area:           p.Area,
		ImageURLs:      append([]string(nil), p.ImageURLs...),
		MainImageIndex: p.MainImageIndex,
		IsFeatured:     p.IsFeatured,
	}
}

// Facets are the distinct values offered by the storefront filter dropdowns
type Facets struct {
	Types         []string `json:"types"`
	Cities        []string `json:"cities"`
	Neighborhoods []string `json:"neighborhoods"`
}

// FeaturedListing is the storefront carousel: the filtered listings plus
// facets computed over every featured listing
type FeaturedListing struct {
	Properties []Property `json:"properties"`
	Facets     Facets     `json:"facets"`
	Total      int        `json:"total"`
}

// PriceOption is a storefront price-range choice
type PriceOption struct {
	Value string  `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max,omitempty"` // 0 means unbounded
}

// PriceOptions are the price ranges offered by the storefront filter
var PriceOptions = []PriceOption{
	{Value: "0-200000", Min: 0, Max: 200000},
	{Value: "200001-400000", Min: 200001, Max: 400000},
	{Value: "400001-600000", Min: 400001, Max: 600000},
	{Value: "600001-", Min: 600001},
}
