package repositories

import "naijamart/internal/models"

// AdminRepository defines the interface for seller account data access.
type AdminRepository interface {
	Create(admin *models.Admin) error
	GetByEmail(email string) (*models.Admin, error)
	GetByID(id string) (*models.Admin, error)
}
