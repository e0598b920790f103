package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
	"naijamart/pkg/paystack"

	"github.com/google/uuid"
)

// PaymentProvider is the slice of the Paystack client the checkout flow needs.
type PaymentProvider interface {
	InitializeTransaction(ctx context.Context, email string, amountKobo int64, reference string) (*paystack.InitializeResult, error)
	VerifyTransaction(ctx context.Context, reference string) (*paystack.VerifyResult, error)
}

// EventPublisher publishes order lifecycle events to the message broker.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = errors.New("cart empty")

// CartInvalidError carries the per-line failures that blocked a checkout.
type CartInvalidError struct {
	Errors []models.LineError
}

func (e *CartInvalidError) Error() string {
	return fmt.Sprintf("cart validation failed with %d error(s)", len(e.Errors))
}

// CheckoutService orchestrates checkout initialization and payment
// verification against the catalog, the order store and the payment provider.
type CheckoutService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartService *CartService
	provider    PaymentProvider
	publisher   EventPublisher // may be nil when no broker is configured
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	cartService *CartService,
	provider PaymentProvider,
	publisher EventPublisher,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartService: cartService,
		provider:    provider,
		publisher:   publisher,
	}
}

// InitializeCheckout re-validates the cart, persists the order with its line
// item snapshots, and requests a hosted payment session. The total is always
// recomputed from live customer prices; client-submitted totals are ignored.
//
// Nothing is persisted when validation fails. When the provider call fails the
// already-created order stays pending and the error is returned so the caller
// can offer a retry. Stock is not touched here; it is decremented only on
// verified payment.
func (s *CheckoutService) InitializeCheckout(ctx context.Context, customer models.CustomerInfo, items []models.CartItem) (*models.CheckoutSession, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Guard against races between the client's validate call and submission.
	validation, err := s.cartService.ValidateCart(items)
	if err != nil {
		return nil, fmt.Errorf("could not confirm cart state: %w", err)
	}
	if !validation.Valid {
		return nil, &CartInvalidError{Errors: validation.Errors}
	}

	// Snapshot lines at live prices and compute the authoritative total.
	var totalAmount int64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s lookup failed: %w", item.ProductID, err)
		}
		lineTotal := product.CustomerPrice * int64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			SellerID:    product.SellerID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.CustomerPrice,
			LineTotal:   lineTotal,
		})
		totalAmount += lineTotal
	}

	reference := newPaymentReference()
	newOrder := &models.Order{
		ID:               uuid.New().String(),
		CustomerName:     customer.Name,
		CustomerEmail:    customer.Email,
		CustomerPhone:    customer.Phone,
		Street:           customer.Street,
		City:             customer.City,
		State:            customer.State,
		Country:          customer.Country,
		Items:            orderItems,
		TotalAmount:      totalAmount,
		PaymentReference: reference,
		PaymentStatus:    models.PaymentPending,
		Status:           models.OrderPending,
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":   newOrder.ID,
		"reference":  reference,
		"total":      totalAmount,
		"item_count": len(orderItems),
	})

	// Paystack charges in kobo.
	session, err := s.provider.InitializeTransaction(ctx, customer.Email, totalAmount*100, reference)
	if err != nil {
		// The order stays pending; the customer can retry checkout.
		return nil, fmt.Errorf("payment provider rejected checkout for order %s: %w", newOrder.ID, err)
	}

	return &models.CheckoutSession{
		OrderID:    newOrder.ID,
		PaymentURL: session.AuthorizationURL,
		Reference:  reference,
		Amount:     totalAmount,
	}, nil
}

// VerifyPayment resolves an order's payment outcome by reference. Calling it
// again on an already settled order returns the stored state without touching
// the provider, stock, or the broker.
func (s *CheckoutService) VerifyPayment(ctx context.Context, reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetByReference(reference)
	if err != nil {
		return nil, err
	}

	if order.PaymentStatus != models.PaymentPending {
		return order, nil
	}

	result, err := s.provider.VerifyTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment %s: %w", reference, err)
	}

	status := models.PaymentFailed
	if result.Status == "success" {
		status = models.PaymentSuccessful
	}

	if err := s.orderRepo.MarkPayment(order.ID, status); err != nil {
		if errors.Is(err, repositories.ErrPaymentFinalized) {
			// A concurrent verification won the transition; report its outcome.
			return s.orderRepo.GetByReference(reference)
		}
		return nil, err
	}
	order.PaymentStatus = status

	if status == models.PaymentSuccessful {
		s.commitStock(order)
		s.publish("payment.verified", map[string]interface{}{
			"order_id":       order.ID,
			"reference":      reference,
			"payment_status": string(status),
		})
	}

	return order, nil
}

// commitStock decrements stock for each line of a paid order. The decrement is
// conditional, so a concurrent sale of the last units surfaces here as
// ErrInsufficientStock; the payment has already been taken at that point, so
// the shortfall is logged for the seller to reconcile rather than failing the
// verification.
func (s *CheckoutService) commitStock(order *models.Order) {
	for _, item := range order.Items {
		if err := s.productRepo.DecrementStock(item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repositories.ErrInsufficientStock) {
				log.Printf("Oversold product %s on order %s: %v", item.ProductID, order.ID, err)
				continue
			}
			log.Printf("Stock decrement failed for product %s on order %s: %v", item.ProductID, order.ID, err)
		}
	}
}

func (s *CheckoutService) publish(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}

// newPaymentReference generates the unique token correlating an order with its
// provider transaction.
func newPaymentReference() string {
	return "NMK-" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
