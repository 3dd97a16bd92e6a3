// Package checkout drives the four-stage order flow:
// shipping, delivery, payment, review. Stage data survives back
// navigation; the cart survives a failed submit.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/satellitegroup/printshop/internal/cart"
	"github.com/satellitegroup/printshop/internal/models"
	"github.com/satellitegroup/printshop/internal/payment"
)

type Stage int

const (
	StageShipping Stage = iota + 1
	StageDelivery
	StagePayment
	StageReview
)

const (
	MethodCard     = "card"
	MethodTransfer = "transfer"
	MethodDelivery = "delivery"
)

var (
	ErrValidation    = errors.New("validation")
	ErrNotSignedIn   = errors.New("sign-in required")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentClosed = errors.New("payment window closed")
)

// DeliveryOptions is the fixed choice list; the first entry is the
// default so the delivery stage always has a valid selection.
var DeliveryOptions = []models.DeliveryOption{
	{ID: "standard", Name: "Standard Delivery", Price: 2500, EstimatedDays: "3-5 business days"},
	{ID: "express", Name: "Express Delivery", Price: 5000, EstimatedDays: "24-48 hours"},
	{ID: "pickup", Name: "Pickup (Asaba Office)", Price: 0, EstimatedDays: "Same day"},
}

func DeliveryOptionByID(id string) (models.DeliveryOption, bool) {
	for _, o := range DeliveryOptions {
		if o.ID == id {
			return o, true
		}
	}
	return models.DeliveryOption{}, false
}

// OrderNumber builds the human-shareable opaque token. Time-derived;
// collisions are accepted risk at this volume, and the orders table's
// unique index turns one into a retryable persist error.
func OrderNumber(now time.Time) string {
	return "SG-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}

// OrderCreator persists a finished checkout.
type OrderCreator interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
}

// Session is one user's walk through the checkout stages.
type Session struct {
	UserID         uint
	Stage          Stage
	Address        models.ShippingAddress
	DeliveryOption models.DeliveryOption
	PaymentMethod  string
	OrderNotes     string
	AcceptedTerms  bool
}

func NewSession(userID uint) (*Session, error) {
	if userID == 0 {
		return nil, ErrNotSignedIn
	}
	return &Session{
		UserID:         userID,
		Stage:          StageShipping,
		DeliveryOption: DeliveryOptions[0],
		PaymentMethod:  MethodTransfer,
	}, nil
}

// CanAdvance reports whether the current stage's gate passes.
// Delivery and payment always pass: a default selection exists.
func (s *Session) CanAdvance() error {
	switch s.Stage {
	case StageShipping:
		return ValidateAddress(s.Address)
	case StageDelivery, StagePayment:
		return nil
	case StageReview:
		if !s.AcceptedTerms {
			return fmt.Errorf("%w: terms must be accepted", ErrValidation)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown stage %d", ErrValidation, s.Stage)
}

func (s *Session) Next() error {
	if err := s.CanAdvance(); err != nil {
		return err
	}
	if s.Stage < StageReview {
		s.Stage++
	}
	return nil
}

// Back steps to the previous stage. Entered data is kept.
func (s *Session) Back() {
	if s.Stage > StageShipping {
		s.Stage--
	}
}

func ValidateAddress(a models.ShippingAddress) error {
	required := []struct {
		name, value string
	}{
		{"full_name", a.FullName},
		{"email", a.Email},
		{"phone", a.Phone},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// BuildItems snapshots cart lines into order items. Live product
// references do not survive into the order.
func BuildItems(lines []models.CartItem, names func(productID string) string) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, l := range lines {
		labels := make([]string, 0, len(l.SelectedOptions))
		for _, o := range l.SelectedOptions {
			labels = append(labels, o.Label)
		}
		items = append(items, models.OrderItem{
			ProductID:   l.ProductID,
			ProductName: names(l.ProductID),
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Options:     labels,
		})
	}
	return items
}

// Orchestrator submits a finished session against the cart, the order
// store and the payment gateway.
type Orchestrator struct {
	Orders  OrderCreator
	Gateway payment.Gateway
	Now     func() time.Time
}

// PlaceOrder runs the final submission. The cart is cleared only after
// the order row exists; any failure leaves cart and session intact so
// the user can retry without re-entering the form.
func (o *Orchestrator) PlaceOrder(ctx context.Context, s *Session, store *cart.Store, names func(string) string) (*models.Order, error) {
	if s.Stage != StageReview {
		return nil, fmt.Errorf("%w: submission only allowed from review", ErrValidation)
	}
	if err := s.CanAdvance(); err != nil {
		return nil, err
	}

	lines := store.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := BuildItems(lines, names)
	var subtotal int64
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}
	fee := s.DeliveryOption.Price

	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	number := OrderNumber(now())

	if s.PaymentMethod == MethodCard {
		// The gateway reference becomes the order number. A closed
		// popup means no order row, ever.
		auth, err := o.Gateway.Initialize(ctx, payment.InitRequest{
			AmountMinor: (subtotal + fee) * 100,
			Reference:   number,
			Email:       s.Address.Email,
		})
		if err != nil {
			return nil, err
		}
		if !auth.Success {
			return nil, ErrPaymentClosed
		}
		number = auth.Reference
	}

	order := &models.Order{
		OrderNumber:     number,
		UserID:          s.UserID,
		Status:          "pending",
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Total:           subtotal + fee,
		ShippingAddress: s.Address,
		DeliveryOption:  s.DeliveryOption,
		PaymentMethod:   s.PaymentMethod,
	}

	created, err := o.Orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	store.Clear(ctx)
	return created, nil
}
