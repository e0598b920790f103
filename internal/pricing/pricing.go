// Package pricing derives the customer-facing price from a seller's admin price.
// All amounts are whole Naira.
package pricing

// FixedFee is the flat platform fee added to every listing, in Naira.
const FixedFee int64 = 5000

// Percent fee expressed as a ratio to keep the arithmetic exact.
const (
	percentNum int64 = 7
	percentDen int64 = 100
)

// CustomerPrice returns the price shown to shoppers for a given admin price:
// adminPrice + FixedFee + 7% of adminPrice, rounded half-up to the nearest Naira.
// Negative input is clamped to zero.
func CustomerPrice(adminPrice int64) int64 {
	if adminPrice < 0 {
		adminPrice = 0
	}
	percentFee := (adminPrice*percentNum + percentDen/2) / percentDen
	return adminPrice + FixedFee + percentFee
}
