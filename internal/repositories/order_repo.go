package repositories

import "shopgh/internal/models"

// OrderRepository defines the interface for order data access. Orders are an
// append-only sequence; Save rewrites the whole sequence.
type OrderRepository interface {
	Load() ([]models.Order, error)
	Save(orders []models.Order) error
}
