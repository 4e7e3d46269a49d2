package pricing

import (
	"testing"

	"marketplace/storefront/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int
		discount int
		want     int
	}{
		{"no discount", 15000, 0, 15000},
		{"20 percent off", 10000, 20, 8000},
		{"rounds half up", 999, 15, 849}, // 849.15
		{"full discount", 5000, 100, 0},
		{"rounding boundary", 1001, 50, 501}, // 500.5 rounds up
		{"zero price", 0, 30, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Product{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, EffectivePrice(p))
		})
	}
}

func TestEffectivePriceIsIdempotent(t *testing.T) {
	p := domain.Product{Price: 10000, Discount: 20}
	first := EffectivePrice(p)
	assert.Equal(t, first, EffectivePrice(p))
}

func TestSavingsExample(t *testing.T) {
	p := domain.Product{Price: 10000, Discount: 20}
	assert.Equal(t, 2000, Savings(p))
}

func TestPriceAndSavingsSumToBasePrice(t *testing.T) {
	for price := 0; price <= 2000; price += 7 {
		for discount := 0; discount <= 100; discount += 5 {
			p := domain.Product{Price: price, Discount: discount}
			assert.Equal(t, p.Price, EffectivePrice(p)+Savings(p),
				"price=%d discount=%d", price, discount)
			assert.GreaterOrEqual(t, Savings(p), 0)
		}
	}
}
