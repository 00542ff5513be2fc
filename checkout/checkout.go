// Package checkout converts a cart subtotal into a payment intent and hands
// the processor's client secret back to the frontend. It deliberately does
// not clear the cart: intent creation and payment completion are separate
// steps, and the frontend calls the clear endpoint only after the processor
// confirms payment.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

// ErrPaymentProvider wraps failures from the payment processor. Callers map
// it to a server error; retrying is the port's concern, not this package's.
var ErrPaymentProvider = errors.New("checkout: payment provider error")

// PaymentPort creates a payment intent for an amount in the currency's minor
// units and returns the processor's client secret.
type PaymentPort interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (clientSecret string, err error)
}

type Handoff struct {
	payments PaymentPort
	currency string

	// fallbackAmount is charged, in whole currency units, when the session
	// carries no subtotal. Historically 1; kept configurable because the
	// default is under product-owner review.
	fallbackAmount int64
}

func NewHandoff(payments PaymentPort, currency string, fallbackAmount int64) *Handoff {
	return &Handoff{
		payments:       payments,
		currency:       currency,
		fallbackAmount: fallbackAmount,
	}
}

// Begin creates a payment intent for the session's cached subtotal and
// returns the client secret. The subtotal is whole currency units; the
// processor wants minor units, hence the x100.
func (h *Handoff) Begin(ctx context.Context, s *session.Data) (string, error) {
	if !s.LoggedIn() {
		return "", cart.ErrUnauthenticated
	}

	amount := s.CartSubtotal
	if amount <= 0 {
		amount = h.fallbackAmount
	}

	secret, err := h.payments.CreateIntent(ctx, amount*100, h.currency)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return secret, nil
}
