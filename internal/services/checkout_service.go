package services

import (
	"fmt"
	"time"

	"shopgh/internal/models"
	"shopgh/internal/repositories"
	"shopgh/internal/session"
)

// CheckoutService converts a session's cart into a persisted order,
// decrementing this session's catalog stock along the way.
type CheckoutService struct {
	orderRepo repositories.OrderRepository
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(orderRepo repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
	}
}

// PlaceOrder commits the session's cart as an order. Validation is a
// separate first pass so a rejected cart leaves stock and the order sequence
// untouched. The stock check is presence-only: a product occurring twice in
// the cart is validated against stock > 0 per occurrence but decremented per
// occurrence too, matching the storefront's documented policy. A
// persistence failure after the commit pass leaves this session's stock
// decremented with no order recorded; the damage is session-local since the
// catalog copy resets with the session.
func (s *CheckoutService) PlaceOrder(sess *session.Session, provider, momo string) (*models.Order, error) {
	if len(sess.Cart) == 0 {
		return nil, models.ErrEmptyCart
	}

	for _, item := range sess.Cart {
		product, err := sess.Catalog.ByID(item.ID)
		if err != nil || product.Stock <= 0 {
			return nil, &models.OutOfStockError{Product: item.Name}
		}
	}

	for _, item := range sess.Cart {
		if err := sess.Catalog.DecrementStock(item.ID); err != nil {
			return nil, fmt.Errorf("failed to decrement stock for product %d: %w", item.ID, err)
		}
	}

	items := make([]models.OrderItem, 0, len(sess.Cart))
	for _, item := range sess.Cart {
		items = append(items, models.OrderItem{
			ID:    item.ID,
			Name:  item.Name,
			Price: item.Price,
		})
	}

	order := models.Order{
		User:      sess.User,
		Items:     items,
		Total:     sess.CartTotal(),
		Provider:  provider,
		Momo:      momo,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	orders, err := s.orderRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	orders = append(orders, order)
	if err := s.orderRepo.Save(orders); err != nil {
		return nil, fmt.Errorf("failed to save orders: %w", err)
	}

	sess.ClearCart()
	return &order, nil
}
