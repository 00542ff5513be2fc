package routes

import (
	"github.com/gin-gonic/gin"
	indexControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/index"
)

// SetupIndexRoutes registers the paginated browse endpoint.
func SetupIndexRoutes(r *gin.Engine, s Services) {
	r.GET("/", indexControllers.Home(s.DB)) // GET /
}
