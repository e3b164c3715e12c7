package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit  = 20
	MaxLimit      = 100
	DefaultOffset = 0
)

// Params holds the limit/offset pair of a list request
type Params struct {
	Limit  int
	Offset int
}

// Meta is returned alongside paginated lists
type Meta struct {
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	Page       int   `json:"page"`
	HasMore    bool  `json:"has_more"`
}

// ParseParams reads ?limit= and ?offset=, falling back to defaults on bad input
func ParseParams(c *gin.Context) Params {
	p := Params{Limit: DefaultLimit, Offset: DefaultOffset}

	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		p.Offset = v
	}

	return p
}

// BuildMeta computes page metadata for a list of total items
func BuildMeta(limit, offset int, total int64) *Meta {
	meta := &Meta{
		Limit:   limit,
		Offset:  offset,
		Total:   total,
		Page:    GetCurrentPage(offset, limit),
		HasMore: HasMore(offset, limit, total),
	}
	if limit > 0 && total > 0 {
		meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return meta
}

// HasMore reports whether items remain after the current page
func HasMore(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}

// GetCurrentPage returns the 1-based page number
func GetCurrentPage(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}
