package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/metrics"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
)

const testSecret = "test-secret"

// The prometheus default registry only tolerates one registration per binary.
var testMetrics = metrics.NewServerMetrics()

type fakeResolver map[uint]cart.Product

func (f fakeResolver) Resolve(_ context.Context, productID uint) (*cart.Product, error) {
	p, ok := f[productID]
	if !ok {
		return nil, cart.ErrProductNotFound
	}
	return &p, nil
}

func newTestServer(resolver cart.Resolver) (*gin.Engine, *session.MemoryStore) {
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore()
	manager := session.NewManager(store, testSecret, time.Hour, session.CookieOptions{})
	engine := cart.NewEngine(resolver)

	r := gin.New()
	r.Use(middleware.Session(manager))
	r.GET("/cart", GetCart(engine, testMetrics))
	r.POST("/product/:productid/addtocart", AddToCart(engine, testMetrics))
	r.POST("/product/:productid/removefromcart", RemoveFromCart(engine, testMetrics))
	r.POST("/cart/clearall", ClearAll(engine, testMetrics))
	return r, store
}

// seedSession plants session state in the store and returns the signed
// cookie plus the raw token for later store lookups.
func seedSession(t *testing.T, store *session.MemoryStore, data session.Data) (*http.Cookie, string) {
	t.Helper()

	token, err := session.NewToken()
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	raw, err := json.Marshal(&data)
	if err != nil {
		t.Fatalf("marshal session: %v", err)
	}
	if err := store.Save(context.Background(), token, raw, time.Hour); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	cookie := &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign(token, []byte(testSecret)),
	}
	return cookie, token
}

func storedSession(t *testing.T, store *session.MemoryStore, token string) session.Data {
	t.Helper()

	raw, err := store.Load(context.Background(), token)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	var data session.Data
	if raw != nil {
		if err := json.Unmarshal(raw, &data); err != nil {
			t.Fatalf("unmarshal session: %v", err)
		}
	}
	return data
}

func TestGetCartRequiresLogin(t *testing.T) {
	r, _ := newTestServer(fakeResolver{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Please log in to view your cart") {
		t.Errorf("body = %s, want login prompt", w.Body.String())
	}
}

func TestGetCart(t *testing.T) {
	r, store := newTestServer(fakeResolver{
		7: {ID: 7, Name: "Vase", Description: "A vase", Price: 10, Image: "aW1n"},
	})
	cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{7, 7}})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}

	entry, ok := body["7"]
	if !ok {
		t.Fatalf("response missing product key: %s", w.Body.String())
	}
	var item struct {
		ProductName string `json:"productname"`
		Price       int64  `json:"price"`
	}
	if err := json.Unmarshal(entry, &item); err != nil {
		t.Fatalf("unmarshal item: %v", err)
	}
	if item.ProductName != "Vase" || item.Price != 10 {
		t.Errorf("item = %+v, want Vase at 10", item)
	}

	// Two units of product 7: one response key, both counted in the subtotal.
	var subtotal int64
	if err := json.Unmarshal(body["cart_subtotal"], &subtotal); err != nil {
		t.Fatalf("unmarshal subtotal: %v", err)
	}
	if subtotal != 20 {
		t.Errorf("cart_subtotal = %d, want 20", subtotal)
	}

	if got := storedSession(t, store, token); got.CartSubtotal != 20 {
		t.Errorf("cached subtotal = %d, want 20", got.CartSubtotal)
	}
}

func TestGetCartPrunesStaleEntries(t *testing.T) {
	r, store := newTestServer(fakeResolver{})
	cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{5}})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (pruning is not an error): %s", w.Code, w.Body.String())
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if len(body) != 1 {
		t.Errorf("response still lists pruned products: %s", w.Body.String())
	}

	got := storedSession(t, store, token)
	if len(got.Cart) != 0 {
		t.Errorf("stale entry survived in the store: %v", got.Cart)
	}
}

func TestAddToCart(t *testing.T) {
	resolver := fakeResolver{7: {ID: 7, Name: "Vase", Price: 10}}

	t.Run("requires login", func(t *testing.T) {
		r, _ := newTestServer(resolver)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/product/7/addtocart", nil))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		r, store := newTestServer(resolver)
		cookie, token := seedSession(t, store, session.Data{UserID: 1})

		req := httptest.NewRequest(http.MethodPost, "/product/99/addtocart", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		if got := storedSession(t, store, token); len(got.Cart) != 0 {
			t.Errorf("failed add still mutated the cart: %v", got.Cart)
		}
	})

	t.Run("appends a unit", func(t *testing.T) {
		r, store := newTestServer(resolver)
		cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{7}})

		req := httptest.NewRequest(http.MethodPost, "/product/7/addtocart", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		got := storedSession(t, store, token)
		if len(got.Cart) != 2 || got.Cart[0] != 7 || got.Cart[1] != 7 {
			t.Errorf("cart = %v, want [7 7]", got.Cart)
		}
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("removes one occurrence", func(t *testing.T) {
		r, store := newTestServer(fakeResolver{})
		cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{1, 1, 2}})

		req := httptest.NewRequest(http.MethodPost, "/product/1/removefromcart", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		got := storedSession(t, store, token)
		if len(got.Cart) != 2 || got.Cart[0] != 1 || got.Cart[1] != 2 {
			t.Errorf("cart = %v, want [1 2]", got.Cart)
		}
	})

	t.Run("not in cart", func(t *testing.T) {
		r, store := newTestServer(fakeResolver{})
		cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{1, 2}})

		req := httptest.NewRequest(http.MethodPost, "/product/9/removefromcart", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Not in Cart") {
			t.Errorf("body = %s, want Not in Cart", w.Body.String())
		}
		got := storedSession(t, store, token)
		if len(got.Cart) != 2 {
			t.Errorf("failed remove mutated the cart: %v", got.Cart)
		}
	})
}

func TestClearAll(t *testing.T) {
	t.Run("clears a populated cart", func(t *testing.T) {
		r, store := newTestServer(fakeResolver{})
		cookie, token := seedSession(t, store, session.Data{UserID: 1, Cart: []uint{1, 2}})

		req := httptest.NewRequest(http.MethodPost, "/cart/clearall", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if got := storedSession(t, store, token); len(got.Cart) != 0 {
			t.Errorf("cart = %v, want empty", got.Cart)
		}

		// The legacy "cart" cookie gets expired too.
		for _, c := range w.Result().Cookies() {
			if c.Name == "cart" && c.MaxAge < 0 {
				return
			}
		}
		t.Error("cart cookie was not expired")
	})

	t.Run("idempotent on an empty cart", func(t *testing.T) {
		r, _ := newTestServer(fakeResolver{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cart/clearall", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}
