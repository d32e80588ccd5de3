package catalog

import (
	"fmt"
	"sort"

	"shopgh/internal/models"
)

// Store is a session-scoped mutable copy of the seed catalog. A Store is
// owned by exactly one session and is never shared or persisted, so it needs
// no locking.
type Store struct {
	products []models.Product
	index    map[int]int // product id -> position in products
}

// NewStore materializes a fresh catalog copy with seed stock values.
func NewStore() *Store {
	s := &Store{
		products: Seed(),
		index:    make(map[int]int),
	}
	for i, p := range s.products {
		s.index[p.ID] = i
	}
	return s
}

// All returns every product in seed order.
func (s *Store) All() []models.Product {
	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ByID returns a copy of the product with the given id.
func (s *Store) ByID(id int) (*models.Product, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %d not found", id)
	}
	p := s.products[i]
	return &p, nil
}

// FilterByCategory returns the products in the given category, in seed order.
func (s *Store) FilterByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// DecrementStock reduces the stock of the given product by one. Stock may go
// negative when the same product occurs more than once in a cart; the
// checkout engine validates presence-only, on purpose.
func (s *Store) DecrementStock(id int) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("product with ID %d not found", id)
	}
	s.products[i].Stock--
	return nil
}
