package domain

// Product is one row of the immutable product table loaded at startup.
// Price is in minor currency units (whole rupiah). Discount is a percent in
// [0,100]; zero means no active discount. Rating is nil when unrated.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    int      `json:"price"`
	Discount int      `json:"discount,omitempty"`
	Stock    int      `json:"stock"`
	Rating   *float64 `json:"rating,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
}
