package properties

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidPriceRange is returned for price filters not shaped "min-max"
var ErrInvalidPriceRange = errors.New("price range must look like min-max")

// Filters narrows a listing query. Zero values mean "no restriction".
type Filters struct {
	Category     string `form:"category" json:"category,omitempty" validate:"omitempty,property_category"`
	Type         string `form:"type" json:"type,omitempty"`
	City         string `form:"city" json:"city,omitempty"`
	Neighborhood string `form:"neighborhood" json:"neighborhood,omitempty"`
	State        string `form:"state" json:"state,omitempty" validate:"omitempty,br_state"`
	// Price is "min-max"; an empty max is unbounded and "all" disables the filter
	Price        string `form:"price" json:"price,omitempty"`
	MinBedrooms  *int   `form:"min_bedrooms" json:"min_bedrooms,omitempty" validate:"omitempty,gte=0"`
	MaxBedrooms  *int   `form:"max_bedrooms" json:"max_bedrooms,omitempty" validate:"omitempty,gte=0"`
	Search       string `form:"search" json:"search,omitempty" validate:"max=200"`
	FeaturedOnly bool   `form:"-" json:"-"`
}

// PriceRange is an inclusive price interval
type PriceRange struct {
	Min float64
	Max float64 // +Inf when unbounded
}

// Contains reports whether price lies in the range
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Unbounded reports whether the range has no upper limit
func (r PriceRange) Unbounded() bool {
	return math.IsInf(r.Max, 1)
}

// ParsePriceRange parses "min-max". ok is false when the value means "any price".
func ParsePriceRange(s string) (r PriceRange, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return PriceRange{}, false, nil
	}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return PriceRange{}, false, ErrInvalidPriceRange
	}

	r.Min, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil || r.Min < 0 {
		return PriceRange{}, false, ErrInvalidPriceRange
	}

	r.Max = math.Inf(1)
	if hi = strings.TrimSpace(hi); hi != "" {
		r.Max, err = strconv.ParseFloat(hi, 64)
		if err != nil || r.Max < r.Min {
			return PriceRange{}, false, ErrInvalidPriceRange
		}
	}
	return r, true, nil
}

// Check validates the parts of the filter that struct tags cannot express
func (f *Filters) Check() error {
	_, _, err := ParsePriceRange(f.Price)
	return err
}

// Predicate reports whether a listing passes one filter criterion
type Predicate func(p *Property) bool

// Predicates returns the criteria f imposes, in evaluation order.
// A malformed price range yields a predicate that rejects everything.
func (f *Filters) Predicates() []Predicate {
	var preds []Predicate

	if f.FeaturedOnly {
		preds = append(preds, func(p *Property) bool { return p.IsFeatured })
	}
	if f.Category != "" {
		preds = append(preds, equals(f.Category, func(p *Property) string { return p.Category }))
	}
	if f.Type != "" {
		preds = append(preds, equals(f.Type, func(p *Property) string { return p.Type }))
	}
	if f.City != "" {
		preds = append(preds, equals(f.City, func(p *Property) string { return p.City }))
	}
	if f.Neighborhood != "" {
		preds = append(preds, equals(f.Neighborhood, func(p *Property) string { return p.Neighborhood }))
	}
	if f.State != "" {
		preds = append(preds, equals(f.State, func(p *Property) string { return p.State }))
	}

	if r, ok, err := ParsePriceRange(f.Price); err != nil {
		preds = append(preds, func(*Property) bool { return false })
	} else if ok {
		preds = append(preds, func(p *Property) bool { return r.Contains(p.Price) })
	}

	if f.MinBedrooms != nil {
		lo := *f.MinBedrooms
		preds = append(preds, func(p *Property) bool { return p.Bedrooms >= lo })
	}
	if f.MaxBedrooms != nil {
		hi := *f.MaxBedrooms
		preds = append(preds, func(p *Property) bool { return p.Bedrooms <= hi })
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		preds = append(preds, func(p *Property) bool {
			return strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.City), term) ||
				strings.Contains(strings.ToLower(p.Neighborhood), term)
		})
	}

	return preds
}

// Match reports whether p passes every criterion of f
func (f *Filters) Match(p *Property) bool {
	for _, pred := range f.Predicates() {
		if !pred(p) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether f restricts nothing
func (f *Filters) IsEmpty() bool {
	return len(f.Predicates()) == 0
}

func equals(want string, field func(p *Property) string) Predicate {
	return func(p *Property) bool { return field(p) == want }
}

// Apply returns the listings passing every filter, preserving order
func Apply(list []Property, f Filters) []Property {
	preds := f.Predicates()
	out := make([]Property, 0, len(list))
next:
	for i := range list {
		for _, pred := range preds {
			if !pred(&list[i]) {
				continue next
			}
		}
		out = append(out, list[i])
	}
	return out
}

// BuildFacets returns the sorted distinct non-empty types, cities and neighborhoods
func BuildFacets(list []Property) Facets {
	return Facets{
		Types:         distinct(list, func(p *Property) string { return p.Type }),
		Cities:        distinct(list, func(p *Property) string { return p.City }),
		Neighborhoods: distinct(list, func(p *Property) string { return p.Neighborhood }),
	}
}

func distinct(list []Property, field func(p *Property) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for i := range list {
		v := field(&list[i])
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
