package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCanceled   OrderStatus = "canceled"
	OrderStatusReturned   OrderStatus = "returned"
	OrderStatusCompleted  OrderStatus = "completed"
)

const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
	PaymentStatusFailed = "Failed"
)

type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      string `gorm:"index;not null" json:"user_id"`
	User        *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// Billing always points at the same row as shipping today; no
	// separate billing capture path exists.
	ShippingAddressID uint             `json:"shipping_address_id"`
	BillingAddressID  uint             `json:"billing_address_id"`
	ShippingAddress   *ShippingAddress `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`

	Details []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details"`

	ItemsTotal   decimal.Decimal `gorm:"type:decimal(10,2)" json:"items_total"`
	Tax          decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	ShippingCost decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	PaymentStatus string      `gorm:"type:VARCHAR(20);default:'Unpaid'" json:"payment_status"`
	PaymentMethod string      `json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderDetail is an immutable purchase-time snapshot of one cart line.
type OrderDetail struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index" json:"order_id"`
	ShopID    uint `gorm:"index" json:"shop_id"`
	ProductID uint `gorm:"not null" json:"product_id"`

	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`

	PricePerUnit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	Status    OrderStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
