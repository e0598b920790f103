package repositories

import (
	"naijamart/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByReference(reference string) (*models.Order, error)
	// Create persists the order together with its line items as one unit;
	// nothing is written if any part fails.
	Create(order *models.Order) error
	// MarkPayment transitions payment status from pending to the given terminal
	// state. It fails with ErrPaymentFinalized when the order's payment is no
	// longer pending, which keeps repeated verification calls side-effect free.
	MarkPayment(id string, status models.PaymentStatus) error
	UpdateStatus(id string, status models.OrderStatus) error
	// Delete(id string) error // Deletion of orders might be complex, so we'll omit for now.
}
