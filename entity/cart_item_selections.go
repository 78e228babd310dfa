package entity

import (
	"gorm.io/gorm"
)

type CartItemSelection struct {
	gorm.Model
	CartItemID uint     `json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	CustomizationID uint          `json:"customizationId"`
	Customization   Customization `json:"-"`

	PriceDelta int64 `json:"priceDelta"`
}
