package view

import "marketplace/storefront/internal/domain"

// Model is the plain data structure handed to the external renderer. Exactly
// one of Home, Detail, Cart is set, matching View.
type Model struct {
	View   domain.View  `json:"view"`
	Home   *HomeModel   `json:"home,omitempty"`
	Detail *DetailModel `json:"detail,omitempty"`
	Cart   *CartModel   `json:"cart,omitempty"`
}

// PriceInfo carries a product's pricing breakdown in minor currency units,
// plus the preformatted effective price for display.
type PriceInfo struct {
	Original  int    `json:"original"`
	Effective int    `json:"effective"`
	Savings   int    `json:"savings"`
	Discount  int    `json:"discount,omitempty"`
	Display   string `json:"display"`
}

// ProductCard is one product tile on the browse grid.
type ProductCard struct {
	Product domain.Product `json:"product"`
	Price   PriceInfo      `json:"price"`
	Image   string         `json:"image"`
	Rating  string         `json:"rating,omitempty"`
}

type HomeModel struct {
	Categories     []string      `json:"categories"`
	ActiveCategory string        `json:"active_category"`
	Products       []ProductCard `json:"products"`
	Count          int           `json:"count"`
}

// Crumb is one segment of the detail view breadcrumb trail.
type Crumb struct {
	Label    string `json:"label"`
	Fragment string `json:"fragment"`
}

// DetailModel describes a single product page. Found is false when the id is
// not in the catalog; the remaining fields are then zero.
type DetailModel struct {
	Found      bool           `json:"found"`
	Product    domain.Product `json:"product,omitempty"`
	Price      PriceInfo      `json:"price,omitempty"`
	Image      string         `json:"image,omitempty"`
	Rating     string         `json:"rating,omitempty"`
	Breadcrumb []Crumb        `json:"breadcrumb,omitempty"`
}

// CartItem is a cart line enriched with its product and pricing.
type CartItem struct {
	Product   domain.Product `json:"product"`
	Qty       int            `json:"qty"`
	UnitPrice int            `json:"unit_price"`
	Subtotal  int            `json:"subtotal"`
	Savings   int            `json:"savings"`
	Image     string         `json:"image"`
}

type CartModel struct {
	Empty          bool       `json:"empty"`
	Items          []CartItem `json:"items,omitempty"`
	Total          int        `json:"total"`
	TotalSavings   int        `json:"total_savings"`
	TotalDisplay   string     `json:"total_display"`
	SavingsDisplay string     `json:"savings_display"`
}
