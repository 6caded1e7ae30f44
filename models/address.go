package models

import (
	"time"
)

// Address is a postal address owned by a user. At most one address per user
// carries is_default = true; the clear-then-set write in the address
// controllers maintains that inside a single transaction.
type Address struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	AddressLine string    `json:"addressLine"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Province    string    `json:"province"`
	PostalCode  string    `json:"postalCode"`
	IsDefault   bool      `json:"isDefault" gorm:"default:false"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
