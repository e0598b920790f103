package repositories

import (
	"naijamart/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetBySeller(sellerID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts qty from the product's stock, failing
	// with ErrInsufficientStock when stock < qty. This is the single write path
	// for stock so two concurrent checkouts cannot jointly oversell.
	DecrementStock(id string, qty int) error
}
