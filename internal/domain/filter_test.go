package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceAsc, ParseSortMode("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSortMode("price_desc"))
	assert.Equal(t, SortName, ParseSortMode("name"))
	assert.Equal(t, SortDefault, ParseSortMode("default"))
	assert.Equal(t, SortDefault, ParseSortMode("garbage"))
	assert.Equal(t, SortDefault, ParseSortMode(""))
}

func TestNewFilterState(t *testing.T) {
	f := NewFilterState()
	assert.Equal(t, CategoryAll, f.Category)
	assert.Empty(t, f.SearchText)
	assert.Equal(t, SortDefault, f.Sort)
}
