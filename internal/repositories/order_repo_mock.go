package repositories

import (
	"sync"

	"shopgh/internal/models"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository with
// an empty sequence, matching the missing-file default of the file-backed
// repository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: []models.Order{}}
}

// Load returns a copy of the stored order sequence.
func (r *MockOrderRepository) Load() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

// Save replaces the stored sequence with a copy of the given one.
func (r *MockOrderRepository) Save(orders []models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Order, len(orders))
	copy(out, orders)
	r.orders = out
	return nil
}
