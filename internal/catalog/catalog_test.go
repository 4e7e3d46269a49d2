package catalog

import (
	"testing"

	"marketplace/storefront/internal/domain"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Kopi", Category: "Minuman", Price: 15000, Stock: 10},
		{ID: 2, Name: "Teh", Category: "Minuman", Price: 10000, Discount: 20, Stock: 5},
		{ID: 3, Name: "Keripik", Category: "Camilan", Price: 18000, Stock: 40},
	}
}

func TestGet(t *testing.T) {
	cat := New(testProducts())

	p, ok := cat.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Teh", p.Name)

	_, ok = cat.Get(99)
	assert.False(t, ok)
}

func TestAllPreservesLoadedOrder(t *testing.T) {
	cat := New(testProducts())

	ids := make([]int, 0)
	for _, p := range cat.All() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestCategoriesLeadWithSentinel(t *testing.T) {
	cat := New(testProducts())
	assert.Equal(t, []string{domain.CategoryAll, "Camilan", "Minuman"}, cat.Categories())
}

func TestCategoriesEmptyCatalog(t *testing.T) {
	cat := New(nil)
	assert.Equal(t, []string{domain.CategoryAll}, cat.Categories())
	assert.Zero(t, cat.Len())
}

func TestNewSkipsInvalidAndDuplicateRecords(t *testing.T) {
	bad := float64(7)
	cat := New([]domain.Product{
		{ID: 1, Name: "Kopi", Category: "Minuman", Price: 15000, Stock: 10},
		{ID: 1, Name: "Kopi lagi", Category: "Minuman", Price: 15000, Stock: 10},
		{ID: 2, Name: "", Category: "Minuman", Price: 10000, Stock: 5},
		{ID: 3, Name: "Diskon aneh", Category: "Minuman", Price: 10000, Discount: 120, Stock: 5},
		{ID: 4, Name: "Harga minus", Category: "Minuman", Price: -1, Stock: 5},
		{ID: 5, Name: "Rating aneh", Category: "Minuman", Price: 1000, Stock: 5, Rating: &bad},
	})
	assert.Equal(t, 1, cat.Len())
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := `[{"id":1,"name":"Kopi","category":"Minuman","price":15000,"stock":10}]`
	require.NoError(t, afero.WriteFile(fs, "/data/produk.json", []byte(data), 0o644))

	cat, err := FromFile(fs, "/data/produk.json")
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())

	_, err = FromFile(fs, "/data/missing.json")
	assert.Error(t, err)
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte("{not json"))
	assert.Error(t, err)
}
