package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/taimoorarshad43/PishPosh2-Backend/ai"
	"github.com/taimoorarshad43/PishPosh2-Backend/cart"
	"github.com/taimoorarshad43/PishPosh2-Backend/checkout"
	"github.com/taimoorarshad43/PishPosh2-Backend/config"
	"github.com/taimoorarshad43/PishPosh2-Backend/metrics"
	"github.com/taimoorarshad43/PishPosh2-Backend/middleware"
	"github.com/taimoorarshad43/PishPosh2-Backend/models"
	"github.com/taimoorarshad43/PishPosh2-Backend/payments"
	"github.com/taimoorarshad43/PishPosh2-Backend/routes"
	"github.com/taimoorarshad43/PishPosh2-Backend/session"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB
	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Tag{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Redis-backed sessions
	sessions := initSessions(cfg)

	// Core services
	engine := cart.NewEngine(cart.DBResolver{DB: db})
	handoff := checkout.NewHandoff(
		payments.NewStripe(cfg.StripeKey),
		cfg.Currency,
		cfg.CheckoutFallbackAmount,
	)
	aiClient := ai.New(cfg.MistralKey)
	serverMetrics := metrics.NewServerMetrics()

	// Gin setup
	r := gin.Default()

	// CORS settings: the frontend sends the session cookie cross-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Metrics(serverMetrics))
	r.Use(middleware.Session(sessions))

	// Setup routes
	routes.SetupRoutes(r, routes.Services{
		DB:       db,
		Cart:     engine,
		Checkout: handoff,
		AI:       aiClient,
		Metrics:  serverMetrics,
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(cfg config.Config) *gorm.DB {
	gormConfig := &gorm.Config{TranslateError: true}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initSessions connects to Redis and builds the session manager
func initSessions(cfg config.Config) *session.Manager {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}

	if cfg.SessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET must be set")
	}

	return session.NewManager(
		session.NewRedisStore(client),
		cfg.SessionSecret,
		cfg.SessionTTL,
		session.CookieOptions{
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		},
	)
}
