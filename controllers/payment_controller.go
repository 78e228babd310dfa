package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rushikesh1Avachat/food-ordering-mains/payments"
)

// PaymentController exposes the provider pass-through endpoints the payment
// clients call directly. Response bodies follow the client contract verbatim,
// not the resp envelope.
type PaymentController struct {
	Gateway             payments.Gateway
	Currency            string
	PublishableKey      string
	MerchantDisplayName string
}

func NewPaymentController(gw payments.Gateway, currency, publishableKey, merchantDisplayName string) *PaymentController {
	return &PaymentController{
		Gateway:             gw,
		Currency:            currency,
		PublishableKey:      publishableKey,
		MerchantDisplayName: merchantDisplayName,
	}
}

// minorUnits converts a major-unit amount (10.00) to provider minor units (1000).
func minorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// GET /payments/config
func (ctl *PaymentController) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"publishableKey":      ctl.PublishableKey,
		"merchantDisplayName": ctl.MerchantDisplayName,
	})
}

type createIntentReq struct {
	Amount float64 `json:"amount"`
	Email  string  `json:"email"`
}

// POST /payments/create-payment-intent
// Creates a customer and a card payment intent for amount*100 minor units.
func (ctl *PaymentController) CreateIntent(c *gin.Context) {
	var req createIntentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: amount and email"})
		return
	}
	if req.Amount <= 0 || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: amount and email"})
		return
	}

	customer, err := ctl.Gateway.CreateCustomer(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	intent, err := ctl.Gateway.CreateIntent(payments.CreateIntentIn{
		Amount:     minorUnits(req.Amount),
		Currency:   ctl.Currency,
		CustomerID: customer.ID,
		CardOnly:   true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentIntent": gin.H{"id": intent.ID, "client_secret": intent.ClientSecret},
		"customer":      customer.ID,
	})
}

type paymentSheetReq struct {
	Amount float64 `json:"amount"`
}

// POST /payments/payment-sheet
// Bundles a customer, an ephemeral key and an intent for the native sheet.
func (ctl *PaymentController) PaymentSheet(c *gin.Context) {
	var req paymentSheetReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
		return
	}

	customer, err := ctl.Gateway.CreateCustomer("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ephemeralKey, err := ctl.Gateway.CreateEphemeralKey(customer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	intent, err := ctl.Gateway.CreateIntent(payments.CreateIntentIn{
		Amount:     minorUnits(req.Amount),
		Currency:   ctl.Currency,
		CustomerID: customer.ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentIntent": intent.ClientSecret,
		"ephemeralKey":  ephemeralKey,
		"customer":      customer.ID,
	})
}

type payReq struct {
	PaymentMethodID string `json:"payment_method_id"`
	PaymentIntentID string `json:"payment_intent_id"`
	CustomerID      string `json:"customer_id"`
	// relayed by some clients; never used for logic
	ClientSecret string `json:"client_secret"`
}

// POST /payments/pay
// Attaches the payment method to the customer, then confirms the intent.
// Validation happens before any provider call.
func (ctl *PaymentController) Pay(c *gin.Context) {
	var req payReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.PaymentMethodID == "" || req.PaymentIntentID == "" || req.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	methodID, err := ctl.Gateway.AttachPaymentMethod(req.PaymentMethodID, req.CustomerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	// keyed by intent so a retried confirmation cannot double-charge
	intent, err := ctl.Gateway.ConfirmIntent(req.PaymentIntentID, methodID, "pay-"+req.PaymentIntentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "details": err.Error()})
		return
	}

	if intent.Status == payments.IntentStatusSucceeded {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment successful",
			"result":  gin.H{"client_secret": intent.ClientSecret},
		})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Payment not successful", "status": intent.Status})
}

type createChargeReq struct {
	Amount float64 `json:"amount"`
}

// POST /payments/create
// Minimal alternate endpoint: bare intent, no customer.
func (ctl *PaymentController) Create(c *gin.Context) {
	var req createChargeReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
		return
	}

	intent, err := ctl.Gateway.CreateIntent(payments.CreateIntentIn{
		Amount:   minorUnits(req.Amount),
		Currency: ctl.Currency,
		CardOnly: true,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
