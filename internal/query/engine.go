package query

import (
	"sort"
	"strings"

	"marketplace/storefront/internal/catalog"
	"marketplace/storefront/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Engine derives the displayed product list from the catalog and the current
// filter state. It holds no mutable state beyond a reusable collator, so
// every call is deterministic and side-effect free.
type Engine struct {
	collator *collate.Collator
}

func New() *Engine {
	return &Engine{collator: collate.New(language.Indonesian)}
}

// FilteredProducts keeps products matching the category (or the "all"
// sentinel) and, when the search text is non-blank, a case-insensitive
// substring of the name or category. The result is a fresh slice, sorted
// stably per the filter's sort mode. Price sorting uses the base price even
// when a discount is active; displayed totals elsewhere use the discounted
// price.
func (e *Engine) FilteredProducts(cat *catalog.Catalog, filter domain.FilterState) []domain.Product {
	search := strings.ToLower(strings.TrimSpace(filter.SearchText))

	list := make([]domain.Product, 0)
	for _, p := range cat.All() {
		if filter.Category != domain.CategoryAll && p.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		list = append(list, p)
	}

	switch filter.Sort {
	case domain.SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case domain.SortName:
		sort.SliceStable(list, func(i, j int) bool {
			return e.collator.CompareString(list[i].Name, list[j].Name) < 0
		})
	}
	return list
}
