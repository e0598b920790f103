package models

import "time"

// PaymentStatus tracks the provider-side outcome of an order's transaction.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
)

// OrderStatus tracks seller-driven fulfilment progress after payment.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is an immutable snapshot of one cart line at order-creation time.
type OrderItem struct {
	ID          uint   `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID     string `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID   string `json:"product_id" gorm:"type:varchar(36)"`
	SellerID    string `json:"seller_id" gorm:"index;type:varchar(36)"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"` // customer price at order time, Naira
	LineTotal   int64  `json:"line_total"`
}

// Order represents a customer order together with its payment state.
type Order struct {
	ID               string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CustomerName     string        `json:"customer_name"`
	CustomerEmail    string        `json:"customer_email"`
	CustomerPhone    string        `json:"customer_phone"`
	Street           string        `json:"street"`
	City             string        `json:"city"`
	State            string        `json:"state"`
	Country          string        `json:"country"`
	Items            []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
	TotalAmount      int64         `json:"total_amount"` // Naira, recomputed server-side at checkout
	PaymentReference string        `json:"payment_reference" gorm:"uniqueIndex;type:varchar(64)"`
	PaymentStatus    PaymentStatus `json:"payment_status" gorm:"type:varchar(16)"`
	Status           OrderStatus   `json:"status" gorm:"type:varchar(16)"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// ValidOrderStatus reports whether s is one of the known fulfilment states.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
