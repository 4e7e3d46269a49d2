package router

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"marketplace/storefront/internal/domain"
)

var detailPattern = regexp.MustCompile(`^produk/(\d+)$`)

// Parse maps a URL fragment to a route. A leading "#" is tolerated so callers
// may pass the raw hash. Unknown or malformed fragments fall back to the home
// view, never an error.
func Parse(fragment string) domain.Route {
	fragment = strings.TrimPrefix(fragment, "#")
	switch fragment {
	case "", "beranda", "kategori":
		return domain.HomeRoute()
	case "keranjang":
		return domain.CartRoute()
	}
	if m := detailPattern.FindStringSubmatch(fragment); m != nil {
		if id, err := strconv.Atoi(m[1]); err == nil {
			return domain.DetailRoute(id)
		}
	}
	return domain.HomeRoute()
}

// Format is the inverse of Parse, used when constructing links.
func Format(route domain.Route) string {
	switch route.View {
	case domain.ViewCart:
		return "keranjang"
	case domain.ViewDetail:
		return fmt.Sprintf("produk/%d", route.ProductID)
	default:
		return "beranda"
	}
}
