package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductStatus string
type ProductAvailability string

const (
	ProductStatusDraft   ProductStatus = "draft"    // Not yet published by the seller
	ProductStatusForSell ProductStatus = "for_sell" // Live and purchasable
	ProductStatusSoldOut ProductStatus = "sold_out" // Stock exhausted

	AvailabilityForSale    ProductAvailability = "for_sale"
	AvailabilityNotForSale ProductAvailability = "not_for_sale"
)

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"uniqueIndex;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID      uint   `gorm:"index;not null" json:"shop_id"`
	CategoryID  uint   `gorm:"index" json:"category_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`

	PricePerItem       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_item"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2)" json:"discount_percentage"`
	StockQuantity      int             `json:"stock_quantity"`

	Status       ProductStatus       `gorm:"type:VARCHAR(20);default:'draft'" json:"status"`
	Availability ProductAvailability `gorm:"type:VARCHAR(20);default:'for_sale'" json:"availability"`

	// Derived, never persisted: PricePerItem less the current discount.
	DiscountedPrice decimal.Decimal `gorm:"-" json:"discounted_price"`

	Shop     *Shop    `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.DiscountedPrice = p.ComputeDiscountedPrice()
	return nil
}

func (p *Product) ComputeDiscountedPrice() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	discount := p.PricePerItem.Mul(p.DiscountPercentage).Div(hundred)
	return p.PricePerItem.Sub(discount)
}
