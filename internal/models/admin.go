package models

import "gorm.io/gorm"

// Admin represents a seller account: a vendor that lists products,
// receives payouts, and is contacted over WhatsApp after a sale.
type Admin struct {
	ID            string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	BusinessName  string `json:"business_name" gorm:"type:varchar(100)" validate:"required,min=3,max=100"`
	Email         string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone         string `json:"phone" gorm:"type:varchar(20)" validate:"required,min=10,max=15"`
	Password      string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	BankName      string `json:"bank_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	BankCode      string `json:"bank_code" gorm:"type:varchar(10)" validate:"omitempty,max=10"`
	AccountNumber string `json:"account_number" gorm:"type:varchar(20)" validate:"omitempty,len=10"`
	AccountName   string `json:"account_name" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	Street        string `json:"street" validate:"omitempty,max=200"`
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=100"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
