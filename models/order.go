package models

import (
	"gorm.io/gorm"
)

// Order statuses as stored in orders.status
const (
	OrderStatusPending   = "Pending"
	OrderStatusPaid      = "Paid"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order is a placed order; the profile area reads these for order history.
type Order struct {
	gorm.Model
	UserID     uint        `json:"user_id" gorm:"not null;index"`
	AddressID  uint        `json:"address_id"`
	Address    Address     `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Status     string      `json:"status" gorm:"default:'Pending'"`
	Total      float64     `json:"total"`
	PaymentRef string      `json:"payment_ref"`
	Items      []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem is a line item within an order
type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"order_id" gorm:"not null;index"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
