package services

import (
	"fmt"

	"shopgh/internal/models"
	"shopgh/internal/repositories"
)

// OrderService handles read access to the persisted order sequence.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// OrdersForUser returns the orders placed by the given user, oldest first.
func (s *OrderService) OrdersForUser(user string) ([]models.Order, error) {
	orders, err := s.orderRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	mine := []models.Order{}
	for _, o := range orders {
		if o.User == user {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

// AllOrders returns every persisted order, oldest first.
func (s *OrderService) AllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// Report summarizes the order history for the admin reports view.
type Report struct {
	TotalOrders  int            `json:"total_orders"`
	TotalRevenue float64        `json:"total_revenue"`
	ByProvider   map[string]int `json:"by_provider"`
}

// BuildReport aggregates the persisted orders into a Report.
func (s *OrderService) BuildReport() (*Report, error) {
	orders, err := s.orderRepo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	report := &Report{
		ByProvider: make(map[string]int),
	}
	for _, o := range orders {
		report.TotalOrders++
		report.TotalRevenue += o.Total
		report.ByProvider[o.Provider]++
	}
	return report, nil
}
