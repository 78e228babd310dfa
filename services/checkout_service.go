package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rushikesh1Avachat/food-ordering-mains/entity"
	"github.com/Rushikesh1Avachat/food-ordering-mains/payments"
	"github.com/Rushikesh1Avachat/food-ordering-mains/repository"
)

var (
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidTransition    = errors.New("invalid checkout state")
	ErrPaymentNotSucceeded  = errors.New("payment not successful")
	ErrMissingPaymentMethod = errors.New("payment method is required")
)

// CheckoutNotifier receives state changes for interested subscribers (the
// websocket status stream). Implementations must not block.
type CheckoutNotifier interface {
	NotifyCheckout(sessionID uint, state string, orderID uint)
}

// CheckoutService drives one checkout attempt through the session state
// machine: issue the sheet bundle, confirm the payment, materialize the order.
type CheckoutService struct {
	DB        *gorm.DB
	Repo      *repository.CheckoutRepository
	CartRepo  *repository.CartRepository
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
	Gateway   payments.Gateway
	Currency  string
	Notifier  CheckoutNotifier // optional
}

func NewCheckoutService(
	db *gorm.DB,
	repo *repository.CheckoutRepository,
	cartRepo *repository.CartRepository,
	orderRepo *repository.OrderRepository,
	userRepo *repository.UserRepository,
	gateway payments.Gateway,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		DB: db, Repo: repo, CartRepo: cartRepo, OrderRepo: orderRepo,
		UserRepo: userRepo, Gateway: gateway, Currency: currency,
	}
}

// StartOut carries the three opaque tokens the payment sheet needs, plus the
// session id the client uses for the rest of the flow.
type StartOut struct {
	SessionID     uint         `json:"sessionId"`
	PaymentIntent string       `json:"paymentIntent"`
	EphemeralKey  string       `json:"ephemeralKey"`
	Customer      string       `json:"customer"`
	Summary       *CartSummary `json:"summary"`
}

// Start opens a checkout session for the user's current cart: creates the
// provider customer, ephemeral key and intent, and moves the session
// uninitialized -> ready. The cart is NOT touched here; it is cleared only
// after the provider reports a succeeded confirmation.
func (s *CheckoutService) Start(userID uint) (*StartOut, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}
	sum := summarize(cart)

	session := &entity.CheckoutSession{
		UserID:         userID,
		State:          StateUninitialized,
		IdempotencyKey: uuid.NewString(),
		Subtotal:       sum.Subtotal,
		DeliveryFee:    sum.DeliveryFee,
		Discount:       sum.Discount,
		Total:          sum.Total,
	}
	if err := s.Repo.Create(session); err != nil {
		return nil, err
	}

	// provider calls are sequential and fail-fast; a session that never
	// reaches ready is simply abandoned
	customer, err := s.Gateway.CreateCustomer(user.Email)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	ephemeralKey, err := s.Gateway.CreateEphemeralKey(customer.ID)
	if err != nil {
		return nil, fmt.Errorf("create ephemeral key: %w", err)
	}
	intent, err := s.Gateway.CreateIntent(payments.CreateIntentIn{
		Amount:         sum.Total,
		Currency:       s.Currency,
		CustomerID:     customer.ID,
		IdempotencyKey: session.IdempotencyKey + "-intent",
	})
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	if err := s.Repo.SetProviderRefs(session.ID, customer.ID, intent.ID, intent.ClientSecret, ephemeralKey); err != nil {
		return nil, err
	}
	if err := s.transition(session.ID, StateUninitialized, StateReady); err != nil {
		return nil, err
	}

	return &StartOut{
		SessionID:     session.ID,
		PaymentIntent: intent.ClientSecret,
		EphemeralKey:  ephemeralKey,
		Customer:      customer.ID,
		Summary:       sum,
	}, nil
}

// Present marks the session as showing the provider's payment sheet.
func (s *CheckoutService) Present(userID, sessionID uint) error {
	session, err := s.Repo.GetForUser(sessionID, userID)
	if err != nil {
		return err
	}
	return s.transition(session.ID, StateReady, StatePresenting)
}

// Confirm attaches the payment method to the session's customer, confirms the
// intent with the session's idempotency key, and on success materializes the
// order and clears the cart in one transaction. On any provider failure the
// session passes through failed back to ready and the cart is untouched.
func (s *CheckoutService) Confirm(userID, sessionID uint, paymentMethodID string) (*entity.CheckoutSession, error) {
	if paymentMethodID == "" {
		return nil, ErrMissingPaymentMethod
	}

	session, err := s.Repo.GetForUser(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.State == StateSucceeded {
		// replayed confirmation of a finished checkout
		return session, nil
	}

	// clients that skip the explicit present step still get a valid machine
	if session.State == StateReady {
		if err := s.transition(session.ID, StateReady, StatePresenting); err != nil {
			return nil, err
		}
	} else if session.State != StatePresenting {
		return nil, ErrInvalidTransition
	}

	// attach must precede confirm, against the same customer the intent holds
	if _, err := s.Gateway.AttachPaymentMethod(paymentMethodID, session.CustomerID); err != nil {
		s.recordFailure(session.ID)
		return nil, fmt.Errorf("attach payment method: %w", err)
	}

	intent, err := s.Gateway.ConfirmIntent(session.PaymentIntentID, paymentMethodID, session.IdempotencyKey)
	if err != nil {
		s.recordFailure(session.ID)
		return nil, fmt.Errorf("confirm payment intent: %w", err)
	}
	if intent.Status != payments.IntentStatusSucceeded {
		s.recordFailure(session.ID)
		return nil, fmt.Errorf("%w: status %s", ErrPaymentNotSucceeded, intent.Status)
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartWithItems(userID)
		if err != nil {
			return err
		}

		order := buildOrder(userID, session, cart)
		if err := s.OrderRepo.Create(tx, order); err != nil {
			return err
		}
		orderID = order.ID

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}
		if err := s.Repo.SetOrder(tx, session.ID, order.ID); err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStateGuard(tx, session.ID, StatePresenting, StateSucceeded)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(session.ID, StateSucceeded, orderID)
	return s.Repo.GetByID(session.ID)
}

func (s *CheckoutService) Get(userID, sessionID uint) (*entity.CheckoutSession, error) {
	return s.Repo.GetForUser(sessionID, userID)
}

// CanAccess reports whether the user owns the session; used by the websocket
// status stream before upgrading.
func (s *CheckoutService) CanAccess(userID, sessionID uint) (bool, error) {
	_, err := s.Repo.GetForUser(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// recordFailure walks presenting -> failed -> ready so subscribers observe
// the failure while the session stays retryable with the same sheet tokens.
func (s *CheckoutService) recordFailure(sessionID uint) {
	if err := s.transition(sessionID, StatePresenting, StateFailed); err != nil {
		return
	}
	_ = s.transition(sessionID, StateFailed, StateReady)
}

func (s *CheckoutService) transition(sessionID uint, from, to string) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	affected, err := s.Repo.UpdateStateGuard(s.DB, sessionID, from, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	s.notify(sessionID, to, 0)
	return nil
}

func (s *CheckoutService) notify(sessionID uint, state string, orderID uint) {
	if s.Notifier != nil {
		s.Notifier.NotifyCheckout(sessionID, state, orderID)
	}
}

func buildOrder(userID uint, session *entity.CheckoutSession, cart *entity.Cart) *entity.Order {
	order := &entity.Order{
		UserID:            userID,
		Subtotal:          session.Subtotal,
		DeliveryFee:       session.DeliveryFee,
		Discount:          session.Discount,
		Total:             session.Total,
		Status:            "paid",
		CheckoutSessionID: session.ID,
	}
	for _, it := range cart.Items {
		row := entity.OrderItem{
			MenuItemID: it.MenuItemID,
			Name:       it.MenuItem.Name,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			Total:      it.Total,
		}
		for _, sel := range it.Selections {
			row.Selections = append(row.Selections, entity.OrderItemSelection{
				CustomizationID: sel.CustomizationID,
				Name:            sel.Customization.Name,
				PriceDelta:      sel.PriceDelta,
			})
		}
		order.Items = append(order.Items, row)
	}
	return order
}
