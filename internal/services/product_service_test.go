package services_test

import (
	"fmt"
	"testing"

	"naijamart/internal/models"
	"naijamart/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySeller(sellerID string) ([]models.Product, error) {
	args := m.Called(sellerID)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id string, qty int) error {
	args := m.Called(id, qty)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Ankara Fabric", AdminPrice: 15000, CustomerPrice: 21050, Stock: 100},
		{ID: "2", Name: "Leather Sandals", AdminPrice: 30000, CustomerPrice: 37100, Stock: 50},
	}

	mockRepo.On("GetAll").Return(expectedProducts, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DerivesCustomerPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Ankara Fabric", AdminPrice: 15000, Stock: 20}

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	err := service.CreateProduct("seller-1", newProduct)
	assert.NoError(t, err)
	// 15000 + 5000 + round(15000 * 0.07) = 21050
	assert.Equal(t, int64(21050), newProduct.CustomerPrice)
	assert.Equal(t, "seller-1", newProduct.SellerID)
	assert.True(t, newProduct.Active)
	mockRepo.AssertExpectations(t)

	// Whatever customer price the request carried is overwritten.
	tampered := &models.Product{Name: "Ankara Fabric", AdminPrice: 1000, CustomerPrice: 1, Stock: 20}
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	err = service.CreateProduct("seller-1", tampered)
	assert.NoError(t, err)
	assert.Equal(t, int64(6070), tampered.CustomerPrice)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_RederivesCustomerPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", SellerID: "seller-1", Name: "Ankara Fabric", AdminPrice: 15000, CustomerPrice: 21050, Stock: 20}
	updated := &models.Product{ID: "1", Name: "Ankara Fabric", AdminPrice: 30000, Stock: 18}

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	err := service.UpdateProduct("seller-1", updated, nil)
	assert.NoError(t, err)
	// 30000 + 5000 + round(30000 * 0.07) = 37100, without the caller touching it
	assert.Equal(t, int64(37100), updated.CustomerPrice)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_ActiveFlag(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	// A request that does not mention the flag keeps the listing live.
	existing := &models.Product{ID: "1", SellerID: "seller-1", Name: "Ankara Fabric", AdminPrice: 15000, Active: true}
	updated := &models.Product{ID: "1", Name: "Ankara Fabric", AdminPrice: 15000, Stock: 18}

	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	err := service.UpdateProduct("seller-1", updated, nil)
	assert.NoError(t, err)
	assert.True(t, updated.Active)
	mockRepo.AssertExpectations(t)

	// Only an explicit false delists it.
	delisted := &models.Product{ID: "1", Name: "Ankara Fabric", AdminPrice: 15000, Stock: 18}
	inactive := false
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	err = service.UpdateProduct("seller-1", delisted, &inactive)
	assert.NoError(t, err)
	assert.False(t, delisted.Active)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_RejectsForeignSeller(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", SellerID: "seller-1", Name: "Ankara Fabric", AdminPrice: 15000}
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()

	err := service.UpdateProduct("seller-2", &models.Product{ID: "1", Name: "Ankara Fabric", AdminPrice: 1}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong to seller")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo)

	existing := &models.Product{ID: "1", SellerID: "seller-1", Name: "Ankara Fabric"}

	// Test successful deletion by the owning seller
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProduct("seller-1", "1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test deletion failure (product not found)
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99: not found")).Once()
	err = service.DeleteProduct("seller-1", "99")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}
