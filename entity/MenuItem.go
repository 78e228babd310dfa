package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"index" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // minor units (cents)
	ImageURL    string `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	Customizations []Customization `gorm:"many2many:menu_customizations;" json:"customizations,omitempty"`
	OrderItems     []OrderItem     `json:"-"`
}
