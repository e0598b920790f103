package services

import (
	"fmt"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
)

// OrderService exposes seller-facing order queries and fulfilment updates.
// Order creation lives in CheckoutService; payment status is owned by the
// verification flow and is not writable here.
type OrderService struct {
	orderRepo repositories.OrderRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// UpdateOrderStatus moves an order through the fulfilment states.
func (s *OrderService) UpdateOrderStatus(id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
