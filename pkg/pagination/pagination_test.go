package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func parse(t *testing.T, query string) Params {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/admin/properties?"+query, nil)
	return ParseParams(c)
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", DefaultLimit, DefaultOffset},
		{"explicit", "limit=10&offset=20", 10, 20},
		{"mixed with filters", "search=casa&state=SP&limit=15&offset=30", 15, 30},
		{"zero limit", "limit=0", DefaultLimit, DefaultOffset},
		{"negative limit", "limit=-10", DefaultLimit, DefaultOffset},
		{"limit clamped", "limit=200", MaxLimit, DefaultOffset},
		{"limit at max", "limit=100", MaxLimit, DefaultOffset},
		{"negative offset", "offset=-1", DefaultLimit, DefaultOffset},
		{"non numeric", "limit=abc&offset=xyz", DefaultLimit, DefaultOffset},
		{"float values", "limit=10.5&offset=10.5", DefaultLimit, DefaultOffset},
		{"empty offset", "limit=1&offset=", 1, DefaultOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse(t, tt.query)
			assert.Equal(t, tt.wantLimit, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestBuildMeta(t *testing.T) {
	tests := []struct {
		name          string
		limit, offset int
		total         int64
		wantPages     int
		wantPage      int
		wantMore      bool
	}{
		{"first of ten", 10, 0, 100, 10, 1, true},
		{"partial last page", 10, 20, 25, 3, 3, false},
		{"empty", 10, 0, 0, 0, 1, false},
		{"zero limit", 0, 0, 100, 0, 1, true},
		{"limit above total", 50, 0, 10, 1, 1, false},
		{"one over a page", 10, 0, 11, 2, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := BuildMeta(tt.limit, tt.offset, tt.total)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.offset, meta.Offset)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantPage, meta.Page)
			assert.Equal(t, tt.wantMore, meta.HasMore)
		})
	}
}

func TestGetCurrentPage(t *testing.T) {
	assert.Equal(t, 1, GetCurrentPage(0, 10))
	assert.Equal(t, 2, GetCurrentPage(15, 10))
	assert.Equal(t, 3, GetCurrentPage(50, 25))
	assert.Equal(t, 1, GetCurrentPage(10, -5))
}

func BenchmarkParseParams(b *testing.B) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/?limit=50&offset=100", nil)

	for i := 0; i < b.N; i++ {
		ParseParams(c)
	}
}
