package service

import (
	"context"
	"fmt"

	"coffeecorner/pkg/logger"
)

// Checkout pricing rules.
const (
	discountRate          = 0.10
	maxDiscount           = 5.0
	freeDeliveryThreshold = 15.0
	deliveryFee           = 1.0
)

// Quote is the priced breakdown of the current cart.
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// CheckoutServiceInterface coordinates the simulated single-step checkout
// across the cart and session slices.
type CheckoutServiceInterface interface {
	Quote() Quote
	Checkout(ctx context.Context) (Quote, error)
}

// CheckoutService prices the cart and completes orders. The checkout
// sequence (award order credit, then clear the cart) spans two state
// containers and is deliberately not atomic: a failure between the steps
// leaves partial effects, matching the storefront's observable behavior.
type CheckoutService struct {
	cart    CartServiceInterface
	session SessionServiceInterface
	logger  *logger.Logger
}

// NewCheckoutService creates a new CheckoutService over the cart and session services
func NewCheckoutService(cart CartServiceInterface, session SessionServiceInterface, logger *logger.Logger) *CheckoutService {
	return &CheckoutService{
		cart:    cart,
		session: session,
		logger:  logger.WithComponent("checkout_service"),
	}
}

// Quote computes the order breakdown from the current subtotal: 10% discount
// capped at 5, free delivery above 15, a flat fee of 1 otherwise.
func (s *CheckoutService) Quote() Quote {
	subtotal := s.cart.Subtotal()

	discount := subtotal * discountRate
	if discount > maxDiscount {
		discount = maxDiscount
	}

	fee := deliveryFee
	if subtotal > freeDeliveryThreshold {
		fee = 0
	}

	return Quote{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		Total:       subtotal - discount + fee,
	}
}

// Checkout completes the order: it prices the cart, awards the order credit
// and points, then clears the cart. Requires a logged-in user and a
// non-empty cart.
func (s *CheckoutService) Checkout(ctx context.Context) (Quote, error) {
	if !s.session.IsLoggedIn() {
		return Quote{}, fmt.Errorf("checkout requires a logged-in user")
	}
	if s.cart.ItemCount() == 0 {
		return Quote{}, fmt.Errorf("cart is empty")
	}

	quote := s.Quote()

	if err := s.session.IncrementOrders(ctx); err != nil {
		s.logger.Error("Failed to record order", "error", err)
		return Quote{}, fmt.Errorf("failed to record order: %v", err)
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		// Order credit is already awarded; the cart stays populated. There
		// is no compensating transaction for this sequence.
		s.logger.Error("Failed to clear cart after checkout", "error", err)
		return quote, fmt.Errorf("failed to clear cart after checkout: %v", err)
	}

	s.logger.Info("Checkout completed",
		"subtotal", quote.Subtotal,
		"discount", quote.Discount,
		"delivery_fee", quote.DeliveryFee,
		"total", quote.Total)

	return quote, nil
}
