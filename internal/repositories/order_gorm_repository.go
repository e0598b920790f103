package repositories

import (
	"errors"
	"fmt"

	"naijamart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their line items, newest first.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its line items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetByReference retrieves the order tied to a payment reference.
func (r *GORMOrderRepository) GetByReference(reference string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "payment_reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with reference %s: %w", reference, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by reference %s: %w", reference, err)
	}
	return &order, nil
}

// Create persists the order and its items inside a transaction.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	// GORM creates the Items association rows within the same transaction.
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// MarkPayment flips payment status away from pending with a guarded UPDATE.
// The WHERE clause on the current status is what makes verification idempotent:
// a second call matches no row and reports ErrPaymentFinalized.
func (r *GORMOrderRepository) MarkPayment(id string, status models.PaymentStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", id, models.PaymentPending).
		Update("payment_status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to mark payment for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to mark payment for order %s: %w", id, err)
		}
		if count == 0 {
			return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("order %s: %w", id, ErrPaymentFinalized)
	}
	return nil
}

// UpdateStatus updates the fulfilment status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrNotFound)
	}
	return nil
}
