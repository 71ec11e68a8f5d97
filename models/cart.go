package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds a customer's pending purchase. UserID may be a registered
// user id or a guest id; either way there is at most one cart per owner.
// The aggregate columns are caches: after any item mutation they must
// equal a recomputation from the items plus tax and shipping.
type Cart struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`

	ItemsTotal    decimal.Decimal `gorm:"type:decimal(10,2)" json:"items_total"`
	TotalDiscount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_discount"`
	Tax           decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	ShippingCost  decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping_cost"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartItem freezes PricePerUnit and DiscountAmount at add/update time.
// A later price change on the Product does not touch existing lines
// until the line is re-added or its quantity changes.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"index" json:"cart_id"`
	ProductID uint `gorm:"not null" json:"product_id"`
	ShopID    uint `gorm:"not null" json:"shop_id"`

	ProductName  string `json:"product_name"`
	ProductImage string `json:"product_image"`
	Quantity     int    `json:"quantity"`

	PricePerUnit   decimal.Decimal `gorm:"type:decimal(10,2)" json:"price_per_unit"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	AddedAt time.Time `json:"added_at"`
}
