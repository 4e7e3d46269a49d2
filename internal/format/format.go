// Package format holds the pure display helpers consumed by the external
// renderer: rupiah amounts, rating stars, and product image references. None
// of the core state components depend on its output for their logic.
package format

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"

	"marketplace/storefront/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah renders an amount in minor currency units with Indonesian digit
// grouping, e.g. 15000 -> "Rp15.000".
func Rupiah(amount int) string {
	return printer.Sprintf("Rp%v", number.Decimal(amount))
}

// RatingStars renders a 0-5 rating as star glyphs with a half-star marker,
// e.g. 4.5 -> "★★★★½". Out-of-range values are clamped.
func RatingStars(rating float64) string {
	r := math.Min(5, math.Max(0, rating))
	full := int(math.Floor(r))
	half := 0
	if r-float64(full) >= 0.5 {
		half = 1
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("★", full))
	if half == 1 {
		b.WriteString("½")
	}
	b.WriteString(strings.Repeat("☆", 5-full-half))
	return b.String()
}

var placeholdSize = regexp.MustCompile(`\d+x\d+`)

// ImageURL resolves a product's display image at the requested square size,
// falling back to a generated placeholder labeled with the product name (or
// its category when the name is too long to fit).
func ImageURL(p domain.Product, size int) string {
	if size <= 0 {
		size = 400
	}
	if p.ImageURL != "" {
		if strings.Contains(p.ImageURL, "placehold.co") {
			return placeholdSize.ReplaceAllString(p.ImageURL, fmt.Sprintf("%dx%d", size, size))
		}
		sep := "?"
		if strings.Contains(p.ImageURL, "?") {
			sep = "&"
		}
		return fmt.Sprintf("%s%sw=%d&h=%d&fit=crop", p.ImageURL, sep, size, size)
	}

	text := p.Name
	if len(text) > 20 {
		text = p.Category
	}
	return fmt.Sprintf("https://placehold.co/%dx%d/0f172a/60a5fa?text=%s", size, size, url.QueryEscape(text))
}
