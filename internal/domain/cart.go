package domain

// CartLine is one product's accumulated quantity in the cart. The cart holds
// at most one line per product. Lines with qty <= 0 are removed, never stored.
// The JSON shape is the persisted wire format: an array of {id, qty}.
type CartLine struct {
	ProductID int `json:"id"`
	Qty       int `json:"qty"`
}
