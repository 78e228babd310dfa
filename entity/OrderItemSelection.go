package entity

import (
	"gorm.io/gorm"
)

type OrderItemSelection struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	CustomizationID uint   `json:"customizationId"`
	Name            string `json:"name"`
	PriceDelta      int64  `json:"priceDelta"`
}
