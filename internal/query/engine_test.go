package query

import (
	"testing"

	"marketplace/storefront/internal/catalog"
	"marketplace/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]domain.Product{
		{ID: 1, Name: "Kopi", Category: "Minuman", Price: 15000, Stock: 10},
		{ID: 2, Name: "Teh", Category: "Minuman", Price: 10000, Discount: 20, Stock: 5},
		{ID: 3, Name: "Keripik", Category: "Camilan", Price: 18000, Stock: 40},
		{ID: 4, Name: "Anggur", Category: "Buah", Price: 10000, Stock: 7},
	})
}

func ids(products []domain.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestDefaultFilterReturnsFullCatalogInOrder(t *testing.T) {
	e := New()
	got := e.FilteredProducts(testCatalog(), domain.NewFilterState())
	assert.Equal(t, []int{1, 2, 3, 4}, ids(got))
}

func TestFilterByCategory(t *testing.T) {
	e := New()
	filter := domain.NewFilterState()
	filter.Category = "Minuman"

	got := e.FilteredProducts(testCatalog(), filter)
	assert.Equal(t, []int{1, 2}, ids(got))
}

func TestSearchMatchesNameAndCategoryCaseInsensitive(t *testing.T) {
	e := New()
	cat := testCatalog()

	tests := []struct {
		search string
		want   []int
	}{
		{"teh", []int{2}},
		{"TEH", []int{2}},
		{"minuman", []int{1, 2}},
		{"  ", []int{1, 2, 3, 4}}, // whitespace-only search matches everything
		{"tidak ada", []int{}},
	}
	for _, tt := range tests {
		filter := domain.NewFilterState()
		filter.SearchText = tt.search
		assert.Equal(t, tt.want, ids(e.FilteredProducts(cat, filter)), "search=%q", tt.search)
	}
}

func TestCategoryAndSearchCombine(t *testing.T) {
	e := New()
	filter := domain.NewFilterState()
	filter.Category = "Camilan"
	filter.SearchText = "teh"

	assert.Empty(t, e.FilteredProducts(testCatalog(), filter))
}

func TestSortModes(t *testing.T) {
	e := New()
	cat := testCatalog()

	tests := []struct {
		mode domain.SortMode
		want []int
	}{
		{domain.SortDefault, []int{1, 2, 3, 4}},
		// Base price sorting; ids 2 and 4 tie at 10000 and keep catalog order.
		{domain.SortPriceAsc, []int{2, 4, 1, 3}},
		{domain.SortPriceDesc, []int{3, 1, 2, 4}},
		{domain.SortName, []int{4, 3, 1, 2}},
	}
	for _, tt := range tests {
		filter := domain.NewFilterState()
		filter.Sort = tt.mode
		assert.Equal(t, tt.want, ids(e.FilteredProducts(cat, filter)), "mode=%s", tt.mode)
	}
}

func TestPriceSortUsesBasePriceNotDiscounted(t *testing.T) {
	// Product 2's discounted price (8000) would sort below product 4's 10000,
	// but sorting deliberately uses the base price, where they tie.
	e := New()
	filter := domain.NewFilterState()
	filter.Sort = domain.SortPriceAsc

	got := e.FilteredProducts(testCatalog(), filter)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
}

func TestFilteringDoesNotMutateCatalogOrder(t *testing.T) {
	e := New()
	cat := testCatalog()

	filter := domain.NewFilterState()
	filter.Sort = domain.SortPriceDesc
	e.FilteredProducts(cat, filter)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(cat.All()))
}
