package services

import (
	"errors"
	"fmt"
	"log"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
)

// CartService checks client-captured carts against the live catalog.
type CartService struct {
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
	}
}

// ValidateCart checks every line against the authoritative product record and
// reports all failures at once so the UI can surface every offending line.
// Read-only; nothing is reserved or decremented here.
//
// A non-nil error means the catalog could not be consulted; the returned
// validation then carries a single generic entry and the caller must block
// checkout rather than assume the cart is fine.
func (s *CartService) ValidateCart(items []models.CartItem) (models.CartValidation, error) {
	validation := models.CartValidation{Errors: []models.LineError{}}

	for _, item := range items {
		// A non-positive quantity would shrink the order total, so it is a
		// line error regardless of what the catalog says.
		if item.Quantity <= 0 {
			validation.Errors = append(validation.Errors, models.LineError{
				ProductID: item.ProductID,
				Error:     "quantity must be a positive integer",
			})
			continue
		}

		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				validation.Errors = append(validation.Errors, models.LineError{
					ProductID: item.ProductID,
					Error:     "product unavailable",
				})
				continue
			}
			log.Printf("Cart validation aborted, catalog lookup failed: %v", err)
			return models.CartValidation{
				Valid: false,
				Errors: []models.LineError{
					{Error: "could not confirm cart state"},
				},
			}, fmt.Errorf("failed to validate cart: %w", err)
		}

		if !product.Active {
			validation.Errors = append(validation.Errors, models.LineError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Error:       "product unavailable",
			})
			continue
		}

		if item.Quantity > product.Stock {
			validation.Errors = append(validation.Errors, models.LineError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Error:       "insufficient stock",
				Available:   product.Stock,
			})
		}

		// The server price always wins over the client snapshot.
		if item.UnitPrice != product.CustomerPrice {
			validation.Errors = append(validation.Errors, models.LineError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Error: fmt.Sprintf("price has changed from %d to %d",
					item.UnitPrice, product.CustomerPrice),
			})
		}
	}

	validation.Valid = len(validation.Errors) == 0
	return validation, nil
}
