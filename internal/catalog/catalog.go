package catalog

import (
	"sort"

	"marketplace/storefront/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Catalog is a read-only view over the product table. It is loaded once at
// startup and never mutated afterwards.
type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// New builds a catalog from the raw product table, preserving order. Records
// that fail validation and duplicate ids are skipped with a warning.
func New(products []domain.Product) *Catalog {
	c := &Catalog{byID: make(map[int]domain.Product, len(products))}
	for _, p := range products {
		if !valid(p) {
			log.Warnf("Skipping invalid product record id=%d (%q)", p.ID, p.Name)
			continue
		}
		if _, exists := c.byID[p.ID]; exists {
			log.Warnf("Skipping duplicate product id=%d (%q)", p.ID, p.Name)
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

func valid(p domain.Product) bool {
	if p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return false
	}
	if p.Discount < 0 || p.Discount > 100 {
		return false
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return false
	}
	return true
}

// Get looks up a product by id.
func (c *Catalog) Get(id int) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the products in loaded order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []domain.Product {
	return c.products
}

// Categories returns the "all" sentinel followed by the distinct product
// categories in ascending lexical order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	cats := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	sort.Strings(cats)
	return append([]string{domain.CategoryAll}, cats...)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
