package handlers

import (
	"context"
	"errors"
	"log"

	"naijamart/internal/models"
	"naijamart/internal/repositories"
	"naijamart/internal/services"
	"naijamart/pkg/paystack"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BankLister is the slice of the Paystack client the bank list endpoint needs.
type BankLister interface {
	ListBanks(ctx context.Context) ([]paystack.Bank, error)
}

// PaymentHandler handles the cart-validation-to-checkout pipeline plus
// payment verification callbacks.
type PaymentHandler struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
	banks           BankLister
	validate        *validator.Validate
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(cartService *services.CartService, checkoutService *services.CheckoutService, banks BankLister) *PaymentHandler {
	return &PaymentHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
		banks:           banks,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the payment routes with the Fiber app. All of them
// are public: the storefront calls them before any account exists, and the
// verify callback is hit on redirect from the provider.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Post("/validate-cart", h.HandleValidateCart)
	paymentRoutes.Post("/initialize", h.HandleInitialize)
	paymentRoutes.Get("/verify/:reference", h.HandleVerify)
	paymentRoutes.Get("/banks", h.HandleListBanks)
}

// ValidateCartRequest is the request body for cart validation.
type ValidateCartRequest struct {
	Items []models.CartItem `json:"items" validate:"required,min=1,dive"`
}

// HandleValidateCart checks the submitted cart against the live catalog and
// returns every line-level problem at once.
func (h *PaymentHandler) HandleValidateCart(c *fiber.Ctx) error {
	var req ValidateCartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing validate-cart body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErrorMessage(err),
		})
	}

	validation, err := h.cartService.ValidateCart(req.Items)
	if err != nil {
		log.Printf("Cart validation could not complete: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "could not confirm cart state",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    validation,
	})
}

// InitializeRequest is the request body for checkout initialization. The
// items slice may be empty here; the service reports that as ErrEmptyCart so
// the client gets a cart-specific message rather than a validation one.
type InitializeRequest struct {
	Customer models.CustomerInfo `json:"customer" validate:"required"`
	Items    []models.CartItem   `json:"items" validate:"dive"`
}

// HandleInitialize runs the checkout orchestration and returns the payment
// redirect URL.
func (h *PaymentHandler) HandleInitialize(c *fiber.Ctx) error {
	var req InitializeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing initialize body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   validationErrorMessage(err),
		})
	}

	session, err := h.checkoutService.InitializeCheckout(c.Context(), req.Customer, req.Items)
	if err != nil {
		var invalid *services.CartInvalidError
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "cart empty",
			})
		case errors.As(err, &invalid):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"error":   "cart validation failed",
				"data":    fiber.Map{"errors": invalid.Errors},
			})
		}
		log.Printf("Checkout initialization failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "checkout failed, please try again",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    session,
	})
}

// HandleVerify resolves the payment outcome for a reference. Safe to call
// repeatedly; a settled order is returned as-is.
func (h *PaymentHandler) HandleVerify(c *fiber.Ctx) error {
	reference := c.Params("reference")

	order, err := h.checkoutService.VerifyPayment(c.Context(), reference)
	if err != nil {
		log.Printf("Payment verification failed for %s: %v", reference, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "No order matches this payment reference",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Could not verify payment, please try again",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"order":  order,
			"status": order.PaymentStatus,
		},
	})
}

// HandleListBanks returns the Nigerian bank list for seller payout setup.
func (h *PaymentHandler) HandleListBanks(c *fiber.Ctx) error {
	banks, err := h.banks.ListBanks(c.Context())
	if err != nil {
		log.Printf("Bank list lookup failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Could not retrieve bank list",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    banks,
	})
}
