// Package catalog holds the generated product list and its filter.
package catalog

import (
	"fmt"
	"strings"
)

// Category groups products on the catalog page
type Category string

const (
	Semiconductors  Category = "Semiconductors"
	Passive         Category = "Passive Components"
	Sensors         Category = "Sensors"
	Connectors      Category = "Connectors"
	IoT             Category = "IoT Modules"
	PowerManagement Category = "Power Management"
)

// All is the filter sentinel matching every category
const All Category = "All"

// Categories in display order
var Categories = []Category{Semiconductors, Passive, Sensors, Connectors, IoT, PowerManagement}

// Valid reports whether c is a known category or the All sentinel
func (c Category) Valid() bool {
	if c == All {
		return true
	}
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Product is an immutable catalog entry
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Specs       []string `json:"specs" yaml:"specs"`
}

// Specs every generated part carries
var standardSpecs = []string{"Industrial Grade", "RoHS Compliant", "High Efficiency"}

// Generate builds n products deterministically. Product i (1-based) takes
// category i mod 6, so the first product is a Passive Component.
func Generate(n int) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		category := Categories[i%len(Categories)]
		family, _, _ := strings.Cut(string(category), " ")
		products = append(products, Product{
			ID:          fmt.Sprintf("prod-%d", i),
			Name:        fmt.Sprintf("K-Tech %s Series %d", family, 100+i),
			Category:    category,
			Description: fmt.Sprintf("High-performance %s solution for industrial and consumer electronics. Designed for durability and efficiency.", strings.ToLower(string(category))),
			Image:       fmt.Sprintf("https://picsum.photos/400/300?random=%d", i),
			Specs:       append([]string(nil), standardSpecs...),
		})
	}
	return products
}

// DefaultSize is the number of products on the site
const DefaultSize = 30

var defaultCatalog = Generate(DefaultSize)

// Default returns a copy of the site catalog
func Default() []Product {
	out := make([]Product, len(defaultCatalog))
	for i, p := range defaultCatalog {
		p.Specs = append([]string(nil), p.Specs...)
		out[i] = p
	}
	return out
}

// ByID looks a product up in the site catalog
func ByID(id string) (Product, bool) {
	for _, p := range defaultCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
