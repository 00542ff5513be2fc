package routes

import (
	"github.com/gin-gonic/gin"
	uploadControllers "github.com/taimoorarshad43/PishPosh2-Backend/controllers/upload"
)

// SetupUploadRoutes registers product listing uploads and AI assistance.
func SetupUploadRoutes(r *gin.Engine, s Services) {
	r.POST("/upload/:userid", uploadControllers.UploadProduct(s.DB)) // POST /upload/:userid
	r.POST("/upload/aiprocess", uploadControllers.AIProcess(s.AI))   // POST /upload/aiprocess
}
