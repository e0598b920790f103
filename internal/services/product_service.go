package services

import (
	"fmt"

	"naijamart/internal/models"
	"naijamart/internal/pricing"
	"naijamart/internal/repositories"
)

// ProductService handles business logic related to product listings.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductsBySeller retrieves all products listed by one seller.
func (s *ProductService) GetProductsBySeller(sellerID string) ([]models.Product, error) {
	return s.repo.GetBySeller(sellerID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new listing for a seller. The customer price is
// derived from the admin price here; whatever the request carried is discarded.
func (s *ProductService) CreateProduct(sellerID string, product *models.Product) error {
	product.SellerID = sellerID
	product.CustomerPrice = pricing.CustomerPrice(product.AdminPrice)
	product.Active = true
	return s.repo.Create(product)
}

// UpdateProduct updates an existing listing, re-deriving the customer price so
// it can never go stale relative to the admin price. Only the owning seller
// may update a listing. active is optional: nil keeps the stored flag, so a
// request that omits the field cannot delist the product by accident.
func (s *ProductService) UpdateProduct(sellerID string, product *models.Product, active *bool) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product %s does not belong to seller %s", product.ID, sellerID)
	}

	product.SellerID = existing.SellerID
	product.CustomerPrice = pricing.CustomerPrice(product.AdminPrice)
	product.CreatedAt = existing.CreatedAt
	product.Active = existing.Active
	if active != nil {
		product.Active = *active
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a seller's listing by its ID.
func (s *ProductService) DeleteProduct(sellerID, id string) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return fmt.Errorf("product %s does not belong to seller %s", id, sellerID)
	}
	return s.repo.Delete(id)
}
