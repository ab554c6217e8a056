package catalog

import (
	"net/url"
	"strings"
)

// Filter narrows the catalog by category and free text
type Filter struct {
	Category Category `json:"category"`
	Query    string   `json:"query"`
}

// Reset returns the filter that matches everything
func Reset() Filter {
	return Filter{Category: All}
}

// IsReset reports whether f matches everything
func (f Filter) IsReset() bool {
	return (f.Category == All || f.Category == "") && f.Query == ""
}

// Match reports whether p satisfies both predicates. The query is matched
// case-insensitively against the name and the description.
func (f Filter) Match(p Product) bool {
	if f.Category != All && f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// Apply returns the matching products in catalog order. The input is not modified.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// ParseFilter reads ?category=&q= query parameters. Unknown categories fall back to All.
func ParseFilter(v url.Values) Filter {
	f := Filter{Category: Category(v.Get("category")), Query: strings.TrimSpace(v.Get("q"))}
	if f.Category == "" || !f.Category.Valid() {
		f.Category = All
	}
	return f
}

// Values encodes the filter as query parameters, omitting defaults
func (f Filter) Values() url.Values {
	v := url.Values{}
	if f.Category != All && f.Category != "" {
		v.Set("category", string(f.Category))
	}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	return v
}
