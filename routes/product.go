package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/product"
)

// SetupProductRoutes registers product detail, related-products, deletion
// and AI tagging.
func SetupProductRoutes(r *gin.Engine, s Services) {
	r.GET("/product/:productid", productControllers.GetProduct(s.DB))                       // GET /product/:productid
	r.POST("/product/:productid/related", productControllers.RelatedProducts(s.DB))         // POST /product/:productid/related
	r.DELETE("/product/:productid/delete", productControllers.DeleteProduct(s.DB))          // DELETE /product/:productid/delete
	r.POST("/product/:productid/tags/generate", productControllers.GenerateTags(s.DB, s.AI)) // POST /product/:productid/tags/generate
}
