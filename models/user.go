package models

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Picture      string `json:"picture"`
	IsAdmin      bool   `json:"is_admin"`
	IsSeller     bool   `json:"is_seller"`

	Shop      *Shop             `gorm:"foreignKey:OwnerID" json:"shop,omitempty"`
	Cart      *Cart             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders    []Order           `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Addresses []ShippingAddress `gorm:"foreignKey:UserID" json:"addresses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GuestUser backs short-lived guest tokens so anonymous visitors can
// build a cart before registering.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
