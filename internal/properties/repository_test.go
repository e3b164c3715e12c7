package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name       string
		filters    *Filters
		wantWhere  string
		wantArgs   []interface{}
		wantArgIdx int
	}{
		{
			name:       "nil filters",
			filters:    nil,
			wantWhere:  "TRUE",
			wantArgs:   []interface{}{},
			wantArgIdx: 1,
		},
		{
			name:       "empty filters",
			filters:    &Filters{Price: "all"},
			wantWhere:  "TRUE",
			wantArgs:   []interface{}{},
			wantArgIdx: 1,
		},
		{
			name:       "state and category",
			filters:    &Filters{State: "SP", Category: "venda"},
			wantWhere:  "p.category = $1 AND p.state = $2",
			wantArgs:   []interface{}{"venda", "SP"},
			wantArgIdx: 3,
		},
		{
			name:       "bounded price range",
			filters:    &Filters{Price: "0-200000"},
			wantWhere:  "p.price >= $1 AND p.price <= $2",
			wantArgs:   []interface{}{float64(0), float64(200000)},
			wantArgIdx: 3,
		},
		{
			name:       "open price range",
			filters:    &Filters{Price: "600001-", FeaturedOnly: true},
			wantWhere:  "p.is_featured AND p.price >= $1",
			wantArgs:   []interface{}{float64(600001)},
			wantArgIdx: 2,
		},
		{
			name:       "malformed price",
			filters:    &Filters{Price: "cheap"},
			wantWhere:  "FALSE",
			wantArgs:   []interface{}{},
			wantArgIdx: 1,
		},
		{
			name:       "bedrooms and search",
			filters:    &Filters{MinBedrooms: intPtr(2), Search: " 50%_off "},
			wantWhere:  "p.bedrooms >= $1 AND (p.title ILIKE $2 OR p.city ILIKE $2 OR p.neighborhood ILIKE $2)",
			wantArgs:   []interface{}{2, `%50\%\_off%`},
			wantArgIdx: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args, argIdx := buildFilters(tt.filters)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
			assert.Equal(t, tt.wantArgIdx, argIdx)
		})
	}
}
