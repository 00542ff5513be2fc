// Package cart implements the session-backed shopping cart. The engine is
// pure: every operation takes the current session state, mutates it in place
// and reports a result, leaving persistence to the caller. The cart itself is
// an ordered list of product ids with duplicates allowed — one entry per
// unit, so the subtotal is plain summation over the list.
package cart

import (
	"context"
	"errors"

	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

var (
	// ErrUnauthenticated means the session has no logged-in user.
	ErrUnauthenticated = errors.New("cart: not logged in")

	// ErrProductNotFound means the referenced product does not exist.
	ErrProductNotFound = errors.New("cart: product not found")

	// ErrNotInCart means a removal referenced a product with no cart entry.
	ErrNotInCart = errors.New("cart: not in cart")
)

// Product is the resolved form of a cart entry.
type Product struct {
	ID          uint
	Name        string
	Description string
	Price       int64
	Image       string
}

// Resolver looks products up for cart validation and subtotal computation.
// Implementations return ErrProductNotFound for unknown ids.
type Resolver interface {
	Resolve(ctx context.Context, productID uint) (*Product, error)
}

// View is the rendered state of a cart: resolved items in insertion order
// (one per unit) and their price sum. Pruned lists the stale ids that were
// dropped from the session while rendering.
type View struct {
	Items    []Product
	Subtotal int64
	Pruned   []uint
}

type Engine struct {
	products Resolver
}

func NewEngine(products Resolver) *Engine {
	return &Engine{products: products}
}

// View resolves every cart entry and recomputes the subtotal. Ids that no
// longer resolve are silently dropped from the session's cart — expected
// steady-state cleanup when a listed product is deleted, not an error. The
// recomputed subtotal is written back into the session as the cache the
// checkout hand-off reads.
func (e *Engine) View(ctx context.Context, s *session.Data) (*View, error) {
	if !s.LoggedIn() {
		return nil, ErrUnauthenticated
	}

	view := &View{}
	var kept []uint

	for _, id := range s.Cart {
		product, err := e.products.Resolve(ctx, id)
		if errors.Is(err, ErrProductNotFound) {
			view.Pruned = append(view.Pruned, id)
			continue
		}
		if err != nil {
			return nil, err
		}

		kept = append(kept, id)
		view.Items = append(view.Items, *product)
		view.Subtotal += product.Price
	}

	s.Cart = kept
	s.CartSubtotal = view.Subtotal

	return view, nil
}

// Add appends one unit of a product to the cart. Adding the same product
// twice yields two entries. The cached subtotal is left alone; it is only
// authoritative again after the next View.
func (e *Engine) Add(ctx context.Context, s *session.Data, productID uint) error {
	if !s.LoggedIn() {
		return ErrUnauthenticated
	}

	if _, err := e.products.Resolve(ctx, productID); err != nil {
		return err
	}

	s.Cart = append(s.Cart, productID)
	return nil
}

// Remove drops exactly one occurrence of a product — the first — from the
// cart. Removing a product with no entry reports ErrNotInCart and leaves the
// cart untouched.
func (e *Engine) Remove(s *session.Data, productID uint) error {
	for i, id := range s.Cart {
		if id == productID {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

// Clear drops the cart field entirely. Idempotent; clearing an empty cart is
// a silent success. The subtotal cache is intentionally left in place — it
// only stops being served once a View recomputes it.
func (e *Engine) Clear(s *session.Data) {
	s.Cart = nil
}
