package repositories_test

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"naijamart/internal/models"
	"naijamart/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&models.Admin{}, &models.Product{}, &models.Order{}, &models.OrderItem{})
	assert.NoError(t, err)
	return db
}

func seedProduct(t *testing.T, repo repositories.ProductRepository, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          "Ankara Fabric",
		AdminPrice:    15000,
		CustomerPrice: 21050,
		Stock:         stock,
		Active:        true,
	}
	assert.NoError(t, repo.Create(product))
	return product
}

func TestDecrementStockConditional(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	product := seedProduct(t, repo, 5)

	// Normal decrement.
	assert.NoError(t, repo.DecrementStock(product.ID, 3))
	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	// Asking for more than remains leaves stock untouched.
	err = repo.DecrementStock(product.ID, 3)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)
	got, err = repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, got.Stock)

	// Draining to exactly zero is allowed.
	assert.NoError(t, repo.DecrementStock(product.ID, 2))
	got, err = repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	// Unknown products are reported as missing, not as short stock.
	err = repo.DecrementStock("no-such-product", 1)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDecrementStockLastUnitContention(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	product := seedProduct(t, repo, 1)

	// Two checkouts both saw stock 1 before either committed. The guarded
	// UPDATE lets exactly one through; the loser fails cleanly instead of
	// driving stock negative.
	first := repo.DecrementStock(product.ID, 1)
	second := repo.DecrementStock(product.ID, 1)

	assert.NoError(t, first)
	assert.ErrorIs(t, second, repositories.ErrInsufficientStock)

	got, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Stock)
}

func seedOrder(t *testing.T, repo repositories.OrderRepository, reference string) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerName:     "Amina Bello",
		CustomerEmail:    "amina@example.com",
		CustomerPhone:    "08091234567",
		Items: []models.OrderItem{
			{ProductID: "prod-1", SellerID: "seller-1", ProductName: "Ankara Fabric", Quantity: 2, UnitPrice: 21050, LineTotal: 42100},
		},
		TotalAmount:      42100,
		PaymentReference: reference,
		PaymentStatus:    models.PaymentPending,
		Status:           models.OrderPending,
	}
	assert.NoError(t, repo.Create(order))
	return order
}

func TestOrderCreatePersistsItems(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo, "NMK-abc123")

	got, err := repo.GetByReference("NMK-abc123")
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Len(t, got.Items, 1)
	assert.Equal(t, int64(42100), got.Items[0].LineTotal)

	_, err = repo.GetByReference("NMK-unknown")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestMarkPaymentTransitionsOnce(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo, "NMK-abc123")

	assert.NoError(t, repo.MarkPayment(order.ID, models.PaymentSuccessful))

	got, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentSuccessful, got.PaymentStatus)

	// A settled payment never transitions again, including to failed.
	err = repo.MarkPayment(order.ID, models.PaymentFailed)
	assert.ErrorIs(t, err, repositories.ErrPaymentFinalized)
	got, err = repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentSuccessful, got.PaymentStatus)

	err = repo.MarkPayment("no-such-order", models.PaymentSuccessful)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo, "NMK-abc123")

	assert.NoError(t, repo.UpdateStatus(order.ID, models.OrderShipped))
	got, err := repo.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderShipped, got.Status)

	err = repo.UpdateStatus("no-such-order", models.OrderShipped)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
