package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// initials avatar URL, issued at registration and replaceable from the profile screen
	Avatar string `json:"avatar"`

	// Relations, preload only when needed
	Orders           []Order           `json:"-"`
	CheckoutSessions []CheckoutSession `json:"-"`
}
