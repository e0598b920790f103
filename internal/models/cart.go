package models

// CartItem is a client-captured cart line submitted for validation and checkout.
// Unit price and line total are client snapshots; the server always recomputes
// against the live catalog before trusting either.
type CartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	SellerID  string `json:"seller_id"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice int64  `json:"unit_price" validate:"gte=0"`
	LineTotal int64  `json:"line_total" validate:"gte=0"`
}

// LineError describes why a single cart line failed validation.
type LineError struct {
	ProductID   string `json:"product_id,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Error       string `json:"error"`
	Available   int    `json:"available,omitempty"` // current stock, set for stock errors
}

// CartValidation is the outcome of checking a cart against the live catalog.
// Every failing line is reported; Valid is true only when Errors is empty.
type CartValidation struct {
	Valid  bool        `json:"valid"`
	Errors []LineError `json:"errors"`
}

// CustomerInfo carries the shopper's contact and shipping details for checkout.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10,max=15"`
	Street  string `json:"street" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	State   string `json:"state" validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
}

// CheckoutSession is returned by checkout initialization; the caller redirects
// the browser to PaymentURL.
type CheckoutSession struct {
	OrderID    string `json:"order_id"`
	PaymentURL string `json:"payment_url"`
	Reference  string `json:"reference"`
	Amount     int64  `json:"amount"` // Naira
}

// SellerLink is one pre-filled WhatsApp deep link for a seller's share of an order.
type SellerLink struct {
	SellerID     string `json:"seller_id"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Link         string `json:"link"`
}
