package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingFixture = `
<html><body>
<div class="product-grid">
  <div class="product-card" data-id="1" data-price="15000" data-stock="10" data-rating="4.8">
    <img src="https://cdn.example.com/kopi.jpg">
    <h3 class="product-card-name">Kopi Arabika</h3>
    <p class="product-card-category">Minuman</p>
  </div>
  <div class="product-card" data-id="2" data-price="10000" data-stock="5" data-discount="20">
    <h3 class="product-card-name">Teh Hijau</h3>
    <p class="product-card-category">Minuman</p>
  </div>
  <div class="product-card" data-id="3" data-price="oops" data-stock="1">
    <h3 class="product-card-name">Rusak</h3>
    <p class="product-card-category">Camilan</p>
  </div>
  <div class="product-card" data-price="5000" data-stock="1">
    <h3 class="product-card-name">Tanpa ID</h3>
  </div>
</div>
</body></html>`

func TestParseListingPage(t *testing.T) {
	parser := newListingParser()

	products, err := parser.ParseListingPage(listingFixture)
	require.NoError(t, err)
	// Malformed cards (bad price, missing id) are skipped.
	require.Len(t, products, 2)

	kopi := products[0]
	assert.Equal(t, 1, kopi.ID)
	assert.Equal(t, "Kopi Arabika", kopi.Name)
	assert.Equal(t, "Minuman", kopi.Category)
	assert.Equal(t, 15000, kopi.Price)
	assert.Equal(t, 10, kopi.Stock)
	assert.Zero(t, kopi.Discount)
	require.NotNil(t, kopi.Rating)
	assert.InDelta(t, 4.8, *kopi.Rating, 0.001)
	assert.Equal(t, "https://cdn.example.com/kopi.jpg", kopi.ImageURL)

	teh := products[1]
	assert.Equal(t, 2, teh.ID)
	assert.Equal(t, 20, teh.Discount)
	assert.Nil(t, teh.Rating)
	assert.Empty(t, teh.ImageURL)
}

func TestParseListingPageEmpty(t *testing.T) {
	parser := newListingParser()

	products, err := parser.ParseListingPage("<html><body><p>Tidak ada produk</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, products)
}
