package routes

import (
	"github.com/gin-gonic/gin"
	checkoutControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/checkout"
)

// SetupCheckoutRoutes registers the payment hand-off endpoint.
func SetupCheckoutRoutes(r *gin.Engine, s Services) {
	r.POST("/stripe_key", checkoutControllers.StripeKey(s.Checkout, s.Metrics)) // POST /stripe_key
}
