package repositories

import "errors"

// Sentinel errors that services branch on. Implementations wrap these with
// fmt.Errorf("...: %w", ...) so callers use errors.Is.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned by conditional stock decrements when the
	// product's current stock cannot cover the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrPaymentFinalized is returned when a payment status transition is
	// requested on an order whose payment is no longer pending.
	ErrPaymentFinalized = errors.New("payment already finalized")
)
