package models

// Product represents a product in the catalog store. Stock is mutated only
// by the checkout engine's commit pass, and only on the session's own copy
// of the catalog; seed values are never written back anywhere.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}
