package entity

import (
	"gorm.io/gorm"
)

// CheckoutSession tracks one checkout attempt from sheet initialization to a
// terminal payment result. State values live in services/checkout_transitions.go.
type CheckoutSession struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	State string `gorm:"not null" json:"state"`

	// one key per checkout attempt; forwarded to the provider on confirm so a
	// retried confirmation cannot double-charge
	IdempotencyKey string `gorm:"uniqueIndex" json:"-"`

	// provider references relayed to the client for the payment sheet
	CustomerID      string `json:"customerId"`
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"-"`
	EphemeralKey    string `json:"-"`

	// amounts captured when the session is opened
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`

	// set once the payment succeeds and the order row is materialized
	OrderID *uint `json:"orderId,omitempty"`
}
