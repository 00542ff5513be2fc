package cartControllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/metrics"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
)

// GET /cart
// Returns the resolved cart keyed by product id plus the recomputed subtotal.
// Stale entries are pruned from the session as a side effect, so the response
// only ever lists products that still exist.
func GetCart(engine *cart.Engine, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		view, err := engine.View(c.Request.Context(), &sess.Data)
		if err != nil {
			if errors.Is(err, cart.ErrUnauthenticated) {
				m.CartOps.WithLabelValues("view", "unauthenticated").Inc()
				c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Please log in to view your cart"})
				return
			}
			m.CartOps.WithLabelValues("view", "error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to load cart"})
			return
		}

		if len(view.Pruned) > 0 {
			log.Printf("pruned %d stale cart entries: %v", len(view.Pruned), view.Pruned)
		}

		// Persist pruning and the subtotal cache before the body is written.
		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save cart"})
			return
		}

		// Duplicate units collapse into one key here; the subtotal still
		// counts every unit.
		output := make(map[string]any, len(view.Items)+1)
		for _, item := range view.Items {
			output[strconv.FormatUint(uint64(item.ID), 10)] = gin.H{
				"productid":          item.ID,
				"productname":        item.Name,
				"productdescription": item.Description,
				"price":              item.Price,
				"image":              item.Image,
			}
		}
		output["cart_subtotal"] = view.Subtotal

		m.CartOps.WithLabelValues("view", "ok").Inc()
		c.JSON(http.StatusOK, output)
	}
}

// POST /product/:productid/addtocart
func AddToCart(engine *cart.Engine, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productid"))
		if err != nil || productID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid product id"})
			return
		}

		sess := middleware.Current(c)

		if err := engine.Add(c.Request.Context(), &sess.Data, uint(productID)); err != nil {
			switch {
			case errors.Is(err, cart.ErrUnauthenticated):
				m.CartOps.WithLabelValues("add", "unauthenticated").Inc()
				c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Please login to add items to your cart"})
			case errors.Is(err, cart.ErrProductNotFound):
				m.CartOps.WithLabelValues("add", "not_found").Inc()
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Product not found"})
			default:
				m.CartOps.WithLabelValues("add", "error").Inc()
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to add to cart"})
			}
			return
		}

		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save cart"})
			return
		}

		m.CartOps.WithLabelValues("add", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Added to Cart!"})
	}
}

// POST /product/:productid/removefromcart
// Removes one unit. No login gate: an anonymous session simply has nothing
// in its cart, which reports as Not in Cart.
func RemoveFromCart(engine *cart.Engine, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productid"))
		if err != nil || productID < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid product id"})
			return
		}

		sess := middleware.Current(c)

		if err := engine.Remove(&sess.Data, uint(productID)); err != nil {
			m.CartOps.WithLabelValues("remove", "not_in_cart").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Not in Cart"})
			return
		}

		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save cart"})
			return
		}

		m.CartOps.WithLabelValues("remove", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Removed from Cart!"})
	}
}

// POST /cart/clearall
// Always succeeds, including on an already-empty cart. Called by the
// frontend once the processor confirms payment, and by the explicit
// empty-my-cart action.
func ClearAll(engine *cart.Engine, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		engine.Clear(&sess.Data)

		if err := middleware.Save(c); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to save cart"})
			return
		}

		// Older frontends kept a separate "cart" cookie; expire it too.
		c.SetCookie("cart", "", -1, "/", "", false, false)

		m.CartOps.WithLabelValues("clear", "ok").Inc()
		c.JSON(http.StatusOK, "Cart Session Cleared")
	}
}
