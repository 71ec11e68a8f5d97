package models

import "time"

type ShopAdminStatus string
type ShopSellerStatus string

const (
	// Admin moderation statuses
	ShopAdminPending  ShopAdminStatus = "pending"  // Awaiting admin approval
	ShopAdminActive   ShopAdminStatus = "active"   // Approved and visible to customers
	ShopAdminInactive ShopAdminStatus = "inactive" // Suspended by an admin

	// Seller-controlled open/closed state
	ShopSellerOpen   ShopSellerStatus = "open"
	ShopSellerClosed ShopSellerStatus = "closed"
)

type Shop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OwnerID     string `gorm:"uniqueIndex;not null" json:"owner_id"` // One shop per seller
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`

	AdminStatus  ShopAdminStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"admin_status"`
	SellerStatus ShopSellerStatus `gorm:"type:VARCHAR(20);default:'closed'" json:"seller_status"`
	OpeningDay   string           `json:"opening_day"`
	ClosingDay   string           `json:"closing_day"`
	OpeningTime  string           `json:"opening_time"`
	ClosingTime  string           `json:"closing_time"`

	Products []Product `gorm:"foreignKey:ShopID" json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
