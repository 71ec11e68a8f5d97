package models

import "time"

// Review holds at most one row per (ProductID, UserID); the upsert is
// enforced by the write path, not a database constraint.
type Review struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"index;not null" json:"product_id"`
	UserID    string `gorm:"index;not null" json:"user_id"`
	Rating    int    `gorm:"not null" json:"rating"` // 1..5
	Comment   string `json:"comment"`
	User      *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserWishlist struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	UserID    string   `gorm:"index;not null" json:"user_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	ShopID    uint     `gorm:"not null" json:"shop_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
