package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"index;not null" json:"user_id"`
	Message string `gorm:"not null" json:"message"`
	IsRead  bool   `json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}

// Payment records one external gateway transaction per order.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrderID       uint            `gorm:"index;not null" json:"order_id"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	PaymentStatus string          `gorm:"type:VARCHAR(20)" json:"payment_status"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`

	CreatedAt time.Time `json:"created_at"`
}
