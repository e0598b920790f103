package repositories

import (
	"fmt"
	"sync"

	"naijamart/internal/models"

	"github.com/google/uuid"
)

// MockAdminRepository is an in-memory implementation of AdminRepository.
type MockAdminRepository struct {
	admins map[string]models.Admin
	mu     sync.RWMutex
}

// NewMockAdminRepository creates a new instance of MockAdminRepository.
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{
		admins: make(map[string]models.Admin),
	}
}

// Create adds a new seller account.
func (r *MockAdminRepository) Create(admin *models.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	r.admins[admin.ID] = *admin
	return nil
}

// GetByEmail returns a seller account by email.
func (r *MockAdminRepository) GetByEmail(email string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.Email == email {
			a := admin
			return &a, nil
		}
	}
	return nil, fmt.Errorf("admin with email %s: %w", email, ErrNotFound)
}

// GetByID returns a seller account by its ID.
func (r *MockAdminRepository) GetByID(id string) (*models.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, ok := r.admins[id]
	if !ok {
		return nil, fmt.Errorf("admin with ID %s: %w", id, ErrNotFound)
	}
	return &admin, nil
}
