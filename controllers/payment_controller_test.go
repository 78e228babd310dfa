package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rushikesh1Avachat/food-ordering-mains/payments"
)

// fakeGateway records provider traffic so tests can assert what reached it.
type fakeGateway struct {
	mu sync.Mutex

	customers int
	intents   []payments.CreateIntentIn
	attaches  int
	confirms  []string // idempotency keys

	confirmStatus string
	intentErr     error
}

func (f *fakeGateway) CreateCustomer(email string) (*payments.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers++
	return &payments.Customer{ID: fmt.Sprintf("cus_%d", f.customers), Email: email}, nil
}

func (f *fakeGateway) CreateIntent(in payments.CreateIntentIn) (*payments.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.intentErr != nil {
		return nil, f.intentErr
	}
	f.intents = append(f.intents, in)
	n := len(f.intents)
	return &payments.Intent{
		ID:           fmt.Sprintf("pi_%d", n),
		ClientSecret: fmt.Sprintf("pi_%d_secret", n),
	}, nil
}

func (f *fakeGateway) CreateEphemeralKey(customerID string) (string, error) {
	return "ek_secret", nil
}

func (f *fakeGateway) AttachPaymentMethod(paymentMethodID, customerID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attaches++
	return paymentMethodID, nil
}

func (f *fakeGateway) ConfirmIntent(intentID, paymentMethodID, idempotencyKey string) (*payments.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirms = append(f.confirms, idempotencyKey)
	status := f.confirmStatus
	if status == "" {
		status = payments.IntentStatusSucceeded
	}
	return &payments.Intent{ID: intentID, ClientSecret: intentID + "_secret", Status: status}, nil
}

func newPaymentRouter(gw payments.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewPaymentController(gw, "usd", "pk_test_123", "Food Ordering App")
	r := gin.New()
	r.GET("/payments/config", ctl.Config)
	r.POST("/payments/create-payment-intent", ctl.CreateIntent)
	r.POST("/payments/payment-sheet", ctl.PaymentSheet)
	r.POST("/payments/pay", ctl.Pay)
	r.POST("/payments/create", ctl.Create)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestPaymentConfig(t *testing.T) {
	r := newPaymentRouter(&fakeGateway{})

	w, body := doJSON(t, r, http.MethodGet, "/payments/config", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pk_test_123", body["publishableKey"])
	assert.Equal(t, "Food Ordering App", body["merchantDisplayName"])
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/create-payment-intent",
		`{"amount": 10.00, "email": "a@b.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, gw.intents, 1)
	assert.Equal(t, int64(1000), gw.intents[0].Amount)
	assert.Equal(t, "usd", gw.intents[0].Currency)
	assert.True(t, gw.intents[0].CardOnly)
	assert.Equal(t, "cus_1", gw.intents[0].CustomerID)

	pi, ok := body["paymentIntent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pi_1", pi["id"])
	assert.Equal(t, "pi_1_secret", pi["client_secret"])
	assert.Equal(t, "cus_1", body["customer"])
}

func TestCreateIntentMissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"amount": 10.00}`,
		`{"email": "a@b.com"}`,
		`{"amount": 0, "email": "a@b.com"}`,
		`not json`,
	} {
		gw := &fakeGateway{}
		r := newPaymentRouter(gw)

		w, resp := doJSON(t, r, http.MethodPost, "/payments/create-payment-intent", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, "Missing required fields: amount and email", resp["error"])
		assert.Zero(t, gw.customers, "no provider call for: %s", body)
	}
}

func TestCreateIntentProviderError(t *testing.T) {
	gw := &fakeGateway{intentErr: fmt.Errorf("rate limited")}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/create-payment-intent",
		`{"amount": 10.00, "email": "a@b.com"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body["error"])
	assert.Equal(t, "rate limited", body["details"])
}

func TestPaymentSheetBundle(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/payment-sheet", `{"amount": 24.50}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_1_secret", body["paymentIntent"])
	assert.Equal(t, "ek_secret", body["ephemeralKey"])
	assert.Equal(t, "cus_1", body["customer"])

	require.Len(t, gw.intents, 1)
	assert.Equal(t, int64(2450), gw.intents[0].Amount)
	assert.False(t, gw.intents[0].CardOnly)
}

func TestPaymentSheetRequiresAmount(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/payment-sheet", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Amount is required", body["error"])
	assert.Zero(t, gw.customers)
}

func TestPaySuccess(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/pay",
		`{"payment_method_id": "pm_1", "payment_intent_id": "pi_9", "customer_id": "cus_1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Payment successful", body["message"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "pi_9_secret", result["client_secret"])

	require.Len(t, gw.confirms, 1)
	assert.Equal(t, "pay-pi_9", gw.confirms[0])
}

func TestPayMissingFields(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"payment_method_id": "pm_1", "payment_intent_id": "pi_9"}`,
		`{"payment_method_id": "pm_1", "customer_id": "cus_1"}`,
		`{"payment_intent_id": "pi_9", "customer_id": "cus_1"}`,
	} {
		gw := &fakeGateway{}
		r := newPaymentRouter(gw)

		w, resp := doJSON(t, r, http.MethodPost, "/payments/pay", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Equal(t, "Missing required fields", resp["error"])
		assert.Zero(t, gw.attaches, "no provider call for: %s", body)
		assert.Empty(t, gw.confirms, "no provider call for: %s", body)
	}
}

func TestPayNotSucceeded(t *testing.T) {
	gw := &fakeGateway{confirmStatus: "requires_action"}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/pay",
		`{"payment_method_id": "pm_1", "payment_intent_id": "pi_9", "customer_id": "cus_1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Payment not successful", body["error"])
	assert.Equal(t, "requires_action", body["status"])
}

func TestCreateBareIntent(t *testing.T) {
	gw := &fakeGateway{}
	r := newPaymentRouter(gw)

	w, body := doJSON(t, r, http.MethodPost, "/payments/create", `{"amount": 5.99}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_1_secret", body["clientSecret"])

	require.Len(t, gw.intents, 1)
	assert.Equal(t, int64(599), gw.intents[0].Amount)
	assert.Zero(t, gw.customers)
}
