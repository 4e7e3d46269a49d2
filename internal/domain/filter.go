package domain

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "all"

type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortName      SortMode = "name"
)

func (m SortMode) String() string {
	return string(m)
}

// ParseSortMode maps arbitrary input to a known sort mode, falling back to
// SortDefault.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceAsc, SortPriceDesc, SortName:
		return SortMode(s)
	default:
		return SortDefault
	}
}

// FilterState is the transient browse state. It lives in memory only and is
// never persisted across reloads.
type FilterState struct {
	Category   string
	SearchText string
	Sort       SortMode
}

// NewFilterState returns the initial browse state: all categories, no search,
// catalog order.
func NewFilterState() FilterState {
	return FilterState{Category: CategoryAll, Sort: SortDefault}
}
