package models

import "time"

// ShippingAddress is deduplicated per user on the exact
// (Address, Postcode, City, Country, PhoneNumber) tuple.
// AddToAddressBook separates saved address-book entries from
// one-off order-time addresses.
type ShippingAddress struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserID           string `gorm:"index;not null" json:"user_id"`
	FullName         string `json:"full_name"`
	Address          string `gorm:"not null" json:"address"`
	City             string `json:"city"`
	Postcode         string `json:"postcode"`
	Country          string `json:"country"`
	PhoneNumber      string `json:"phone_number"`
	AddToAddressBook bool   `json:"add_to_address_book"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
