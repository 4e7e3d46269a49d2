package view

import (
	"marketplace/storefront/internal/cart"
	"marketplace/storefront/internal/catalog"
	"marketplace/storefront/internal/domain"
	"marketplace/storefront/internal/format"
	"marketplace/storefront/internal/pricing"
	"marketplace/storefront/internal/query"
	"marketplace/storefront/internal/router"
)

// Coordinator owns the transient browse state (filter + route) and rebuilds
// the view model after every route change or mutation, before the next read.
// The model is fully determined by the cart, filter, and route. Not safe for
// concurrent use: the storefront runs a single event loop.
type Coordinator struct {
	catalog *catalog.Catalog
	cart    *cart.Store
	engine  *query.Engine

	filter  domain.FilterState
	route   domain.Route
	current Model
}

// NewCoordinator wires the catalog, cart, and query engine together and
// subscribes to cart changes so the cached model never goes stale.
func NewCoordinator(cat *catalog.Catalog, cartStore *cart.Store, engine *query.Engine) *Coordinator {
	c := &Coordinator{
		catalog: cat,
		cart:    cartStore,
		engine:  engine,
		filter:  domain.NewFilterState(),
		route:   domain.HomeRoute(),
	}
	cartStore.Subscribe(c.recompute)
	c.recompute()
	return c
}

// Navigate parses the fragment and switches to the addressed view.
func (c *Coordinator) Navigate(fragment string) Model {
	return c.SetRoute(router.Parse(fragment))
}

func (c *Coordinator) SetRoute(route domain.Route) Model {
	c.route = route
	c.recompute()
	return c.current
}

func (c *Coordinator) SetCategory(category string) Model {
	c.filter.Category = category
	c.recompute()
	return c.current
}

func (c *Coordinator) SetSearch(text string) Model {
	c.filter.SearchText = text
	c.recompute()
	return c.current
}

func (c *Coordinator) SetSort(mode domain.SortMode) Model {
	c.filter.Sort = mode
	c.recompute()
	return c.current
}

// Current returns the view model for the current route and state.
func (c *Coordinator) Current() Model {
	return c.current
}

// Route returns the current route.
func (c *Coordinator) Route() domain.Route {
	return c.route
}

// Filter returns the current browse filter state.
func (c *Coordinator) Filter() domain.FilterState {
	return c.filter
}

// Badge returns the summed cart quantity for the header indicator.
func (c *Coordinator) Badge() int {
	return c.cart.TotalCount()
}

func (c *Coordinator) recompute() {
	switch c.route.View {
	case domain.ViewCart:
		c.current = Model{View: domain.ViewCart, Cart: c.cartModel()}
	case domain.ViewDetail:
		c.current = Model{View: domain.ViewDetail, Detail: c.detailModel(c.route.ProductID)}
	default:
		c.current = Model{View: domain.ViewHome, Home: c.homeModel()}
	}
}

func (c *Coordinator) homeModel() *HomeModel {
	products := c.engine.FilteredProducts(c.catalog, c.filter)
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			Product: p,
			Price:   priceInfo(p),
			Image:   format.ImageURL(p, 400),
			Rating:  ratingDisplay(p),
		})
	}
	return &HomeModel{
		Categories:     c.catalog.Categories(),
		ActiveCategory: c.filter.Category,
		Products:       cards,
		Count:          len(cards),
	}
}

func (c *Coordinator) detailModel(id int) *DetailModel {
	p, ok := c.catalog.Get(id)
	if !ok {
		return &DetailModel{Found: false}
	}
	return &DetailModel{
		Found:   true,
		Product: p,
		Price:   priceInfo(p),
		Image:   format.ImageURL(p, 600),
		Rating:  ratingDisplay(p),
		Breadcrumb: []Crumb{
			{Label: "Beranda", Fragment: router.Format(domain.HomeRoute())},
			{Label: p.Category, Fragment: router.Format(domain.HomeRoute())},
			{Label: p.Name, Fragment: router.Format(domain.DetailRoute(p.ID))},
		},
	}
}

func (c *Coordinator) cartModel() *CartModel {
	m := &CartModel{}
	for _, line := range c.cart.Lines() {
		p, ok := c.catalog.Get(line.ProductID)
		if !ok {
			continue
		}
		unit := pricing.EffectivePrice(p)
		item := CartItem{
			Product:   p,
			Qty:       line.Qty,
			UnitPrice: unit,
			Subtotal:  unit * line.Qty,
			Savings:   pricing.Savings(p) * line.Qty,
			Image:     format.ImageURL(p, 128),
		}
		m.Items = append(m.Items, item)
		m.Total += item.Subtotal
		m.TotalSavings += item.Savings
	}
	m.Empty = len(m.Items) == 0
	m.TotalDisplay = format.Rupiah(m.Total)
	m.SavingsDisplay = format.Rupiah(m.TotalSavings)
	return m
}

func priceInfo(p domain.Product) PriceInfo {
	effective := pricing.EffectivePrice(p)
	return PriceInfo{
		Original:  p.Price,
		Effective: effective,
		Savings:   pricing.Savings(p),
		Discount:  p.Discount,
		Display:   format.Rupiah(effective),
	}
}

func ratingDisplay(p domain.Product) string {
	if p.Rating == nil {
		return ""
	}
	return format.RatingStars(*p.Rating)
}
