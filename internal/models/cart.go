package models

// CartItem is a snapshot of a Product taken at add-to-cart time. Name and
// price are frozen in the copy even if the catalog entry changes later in
// the same session.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// NewCartItem captures the product fields a cart needs to carry.
func NewCartItem(p Product) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Image:    p.Image,
	}
}
