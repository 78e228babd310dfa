package entity

import (
	"gorm.io/gorm"
)

// Customization is an optional add-on for a menu item (topping, side, size).
// PriceDelta is added to the item's unit price when selected.
type Customization struct {
	gorm.Model
	Name       string `json:"name"`
	PriceDelta int64  `json:"priceDelta"` // minor units (cents)
	Type       string `json:"type"`       // "topping" | "side" | "size"

	MenuItems []MenuItem `gorm:"many2many:menu_customizations;" json:"-"`
}
