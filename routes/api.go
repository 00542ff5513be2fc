package routes

import (
	"github.com/gin-gonic/gin"
	apiControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/api"
	productControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/product"
)

// SetupAPIRoutes registers the read-only /v1 API.
func SetupAPIRoutes(r *gin.Engine, s Services) {
	v1 := r.Group("/v1")
	{
		v1.GET("/users", apiControllers.GetUsers(s.DB))                        // GET /v1/users
		v1.GET("/users/:userid", apiControllers.GetUser(s.DB))                 // GET /v1/users/:userid
		v1.GET("/users/:userid/products", apiControllers.GetUserProducts(s.DB)) // GET /v1/users/:userid/products

		v1.GET("/products", apiControllers.GetProducts(s.DB))                  // GET /v1/products
		v1.GET("/products/export", productControllers.ExportProductsToExcel(s.DB)) // GET /v1/products/export
		v1.GET("/products/:productid", apiControllers.GetProduct(s.DB))        // GET /v1/products/:productid

		v1.GET("/productimages", apiControllers.GetProductImages(s.DB))             // GET /v1/productimages
		v1.GET("/productsimages/:productid", apiControllers.GetProductWithImage(s.DB)) // GET /v1/productsimages/:productid
	}
}
