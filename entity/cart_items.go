package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int   `json:"qty"`
	UnitPrice int64 `json:"unitPrice"` // item price + selected customization deltas
	Total     int64 `json:"total"`

	// sorted customization ids joined with commas; lines merge only when both
	// the menu item and this key match
	SelectionsKey string `gorm:"index" json:"-"`

	Selections []CartItemSelection `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"selections"`
}
