package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/taimoorarshad43/PishPosh2-Backend/ai"
	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/checkout"
	"github.com/taimoorarshad43/PishPosh2-Backend/metrics"
	"gorm.io/gorm"
)

// Services bundles everything the route groups need. The session middleware
// is installed globally in main before these run.
type Services struct {
	DB       *gorm.DB
	Cart     *cart.Engine
	Checkout *checkout.Handoff
	AI       *ai.Client
	Metrics  *metrics.ServerMetrics
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, s Services) {
	// Browse + cart + checkout (the frontend's main surface)
	SetupIndexRoutes(r, s)
	SetupCartRoutes(r, s)
	SetupCheckoutRoutes(r, s)

	// Accounts
	SetupUserRoutes(r, s)

	// Product detail, uploads, AI assistance
	SetupProductRoutes(r, s)
	SetupUploadRoutes(r, s)

	// Read-only JSON API
	SetupAPIRoutes(r, s)

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
