package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the store
type User struct {
	gorm.Model
	Name        string    `json:"name"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Image       string    `json:"image"`
	Role        string    `json:"role" gorm:"default:'user'"`
	IsBlocked   bool      `json:"is_blocked" gorm:"default:false"`
	OTP         string    `json:"-"`
	OTPExpiry   time.Time `json:"-"`
	LastLoginAt time.Time `json:"last_login_at"`
	GoogleID    string    `gorm:"default:null" json:"-"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
}

// Product represents a storefront product
type Product struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	IsActive    bool    `json:"is_active" gorm:"default:true"`
}

// Review represents a product review left by a user
type Review struct {
	gorm.Model
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	UserID    uint    `json:"user_id"`
	Rating    int     `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string  `json:"comment"`
}
