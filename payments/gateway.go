// Package payments wraps the payment provider behind a small capability
// interface so services and tests never touch the provider SDK directly.
package payments

// IntentStatusSucceeded is the only terminal status the storefront treats as
// a completed payment; anything else leaves the checkout retryable.
const IntentStatusSucceeded = "succeeded"

type Customer struct {
	ID    string
	Email string
}

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

type CreateIntentIn struct {
	Amount     int64 // minor units
	Currency   string
	CustomerID string

	// CardOnly restricts the intent to card payments (the legacy web form);
	// otherwise automatic payment methods are enabled for the payment sheet.
	CardOnly bool

	IdempotencyKey string
}

// Gateway is the provider surface the checkout flow needs. The Stripe
// implementation is selected at composition time in main; tests inject fakes.
type Gateway interface {
	CreateCustomer(email string) (*Customer, error)
	CreateIntent(in CreateIntentIn) (*Intent, error)
	CreateEphemeralKey(customerID string) (string, error)

	// AttachPaymentMethod must be called with the same customer the intent
	// references before ConfirmIntent; returns the attached method id.
	AttachPaymentMethod(paymentMethodID, customerID string) (string, error)
	ConfirmIntent(intentID, paymentMethodID, idempotencyKey string) (*Intent, error)
}
