package models

import "gorm.io/gorm"

// Product represents a marketplace listing owned by a seller.
// CustomerPrice is always derived from AdminPrice via the pricing package;
// it is never accepted from a request body.
type Product struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	SellerID      string `json:"seller_id" gorm:"index;type:varchar(36)"`
	Name          string `json:"name" validate:"required,min=3,max=100"`
	Description   string `json:"description" validate:"omitempty,max=500"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	AdminPrice    int64  `json:"admin_price" validate:"gte=0"` // seller's price in whole Naira
	CustomerPrice int64  `json:"customer_price"`               // derived, admin price plus platform fee
	Stock         int    `json:"stock" validate:"gte=0"`
	Active        bool   `json:"active"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
