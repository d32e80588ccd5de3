package session

import (
	"time"

	"shopgh/internal/catalog"
	"shopgh/internal/models"
)

// Session is the explicit per-session context object: the logged-in user,
// their role, the active cart, and this session's private copy of the
// catalog. It is created at login and discarded at logout; there is no
// process-wide session singleton.
type Session struct {
	ID        string
	User      string
	Role      string
	Cart      []models.CartItem
	Catalog   *catalog.Store
	CreatedAt time.Time
}

// AddToCart appends a snapshot of the product to the cart. Name and price
// are frozen at add time.
func (s *Session) AddToCart(p models.Product) {
	s.Cart = append(s.Cart, models.NewCartItem(p))
}

// RemoveFromCart removes the cart item at the given position. An
// out-of-range index is a no-op.
func (s *Session) RemoveFromCart(index int) {
	if index < 0 || index >= len(s.Cart) {
		return
	}
	s.Cart = append(s.Cart[:index], s.Cart[index+1:]...)
}

// CartTotal returns the sum of the cart's snapshot prices.
func (s *Session) CartTotal() float64 {
	var total float64
	for _, item := range s.Cart {
		total += item.Price
	}
	return total
}

// ClearCart empties the cart. Called on successful checkout.
func (s *Session) ClearCart() {
	s.Cart = []models.CartItem{}
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}
