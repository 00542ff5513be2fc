package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/cart"
)

// SetupCartRoutes registers the session cart endpoints. Auth is checked per
// handler because each endpoint carries its own login-prompt message.
func SetupCartRoutes(r *gin.Engine, s Services) {
	r.GET("/cart", cartControllers.GetCart(s.Cart, s.Metrics))                                // GET /cart
	r.POST("/product/:productid/addtocart", cartControllers.AddToCart(s.Cart, s.Metrics))     // POST /product/:productid/addtocart
	r.POST("/product/:productid/removefromcart", cartControllers.RemoveFromCart(s.Cart, s.Metrics)) // POST /product/:productid/removefromcart
	r.POST("/cart/clearall", cartControllers.ClearAll(s.Cart, s.Metrics))                     // POST /cart/clearall
}
