package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/checkout"
	"github.com/taimoorarshad43/PishPosh2-Backend/metrics"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
)

// POST /stripe_key
// Creates a payment intent for the session's cached subtotal and returns the
// processor's client secret as a bare JSON string. The cart stays intact;
// the frontend clears it separately after the payment actually completes.
func StripeKey(handoff *checkout.Handoff, m *metrics.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.Current(c)

		secret, err := handoff.Begin(c.Request.Context(), &sess.Data)
		if err != nil {
			if errors.Is(err, cart.ErrUnauthenticated) {
				c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Please log in to check out"})
				return
			}
			m.PaymentIntents.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Payment provider error"})
			return
		}

		m.PaymentIntents.WithLabelValues("ok").Inc()
		c.JSON(http.StatusOK, secret)
	}
}
