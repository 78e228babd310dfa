package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	Status string `gorm:"not null;default:paid" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	CheckoutSessionID uint `json:"checkoutSessionId"`

	// preload only on detail
	Items []OrderItem `json:"items,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
