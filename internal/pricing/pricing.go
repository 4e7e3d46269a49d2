package pricing

import (
	"math"

	"marketplace/storefront/internal/domain"
)

// EffectivePrice returns the unit price after applying any active discount,
// rounded half-up. Amounts are in minor currency units, so the result is
// always a whole number and EffectivePrice + Savings == Price.
func EffectivePrice(p domain.Product) int {
	if p.Discount <= 0 {
		return p.Price
	}
	return int(math.Round(float64(p.Price) * (1 - float64(p.Discount)/100)))
}

// Savings returns the per-unit amount saved versus the base price. Zero when
// no discount is active.
func Savings(p domain.Product) int {
	return p.Price - EffectivePrice(p)
}
