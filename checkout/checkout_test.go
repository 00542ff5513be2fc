package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

type fakePaymentPort struct {
	gotAmount   int64
	gotCurrency string
	secret      string
	err         error
	calls       int
}

func (f *fakePaymentPort) CreateIntent(_ context.Context, amountMinorUnits int64, currency string) (string, error) {
	f.calls++
	f.gotAmount = amountMinorUnits
	f.gotCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return f.secret, nil
}

func TestBeginConvertsToMinorUnits(t *testing.T) {
	tests := []struct {
		name       string
		subtotal   int64
		wantAmount int64
	}{
		{"subtotal 25 becomes 2500 cents", 25, 2500},
		{"absent subtotal falls back to 1 unit", 0, 100},
		{"subtotal 1 becomes 100 cents", 1, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			port := &fakePaymentPort{secret: "pi_secret_123"}
			handoff := NewHandoff(port, "usd", 1)
			data := session.Data{UserID: 1, CartSubtotal: tc.subtotal}

			secret, err := handoff.Begin(context.Background(), &data)
			if err != nil {
				t.Fatalf("Begin: %v", err)
			}
			if secret != "pi_secret_123" {
				t.Errorf("secret = %q, want pi_secret_123", secret)
			}
			if port.gotAmount != tc.wantAmount {
				t.Errorf("port received %d minor units, want %d", port.gotAmount, tc.wantAmount)
			}
			if port.gotCurrency != "usd" {
				t.Errorf("port received currency %q, want usd", port.gotCurrency)
			}
		})
	}
}

func TestBeginRequiresLogin(t *testing.T) {
	port := &fakePaymentPort{secret: "pi_secret_123"}
	handoff := NewHandoff(port, "usd", 1)
	data := session.Data{CartSubtotal: 25}

	_, err := handoff.Begin(context.Background(), &data)
	if !errors.Is(err, cart.ErrUnauthenticated) {
		t.Fatalf("Begin on anonymous session: err = %v, want ErrUnauthenticated", err)
	}
	if port.calls != 0 {
		t.Errorf("payment port was called %d times for an anonymous session", port.calls)
	}
}

func TestBeginWrapsProviderFailure(t *testing.T) {
	port := &fakePaymentPort{err: errors.New("card network down")}
	handoff := NewHandoff(port, "usd", 1)
	data := session.Data{UserID: 1, CartSubtotal: 25}

	_, err := handoff.Begin(context.Background(), &data)
	if !errors.Is(err, ErrPaymentProvider) {
		t.Fatalf("Begin: err = %v, want ErrPaymentProvider", err)
	}
}

func TestBeginLeavesCartAlone(t *testing.T) {
	port := &fakePaymentPort{secret: "pi_secret_123"}
	handoff := NewHandoff(port, "usd", 1)
	data := session.Data{UserID: 1, Cart: []uint{1, 2}, CartSubtotal: 12}

	if _, err := handoff.Begin(context.Background(), &data); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if len(data.Cart) != 2 || data.CartSubtotal != 12 {
		t.Errorf("Begin mutated session state: %+v", data)
	}
}

func TestBeginUsesConfiguredFallback(t *testing.T) {
	port := &fakePaymentPort{secret: "pi_secret_123"}
	handoff := NewHandoff(port, "usd", 5)
	data := session.Data{UserID: 1}

	if _, err := handoff.Begin(context.Background(), &data); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if port.gotAmount != 500 {
		t.Errorf("port received %d minor units, want 500 (configured fallback of 5)", port.gotAmount)
	}
}
