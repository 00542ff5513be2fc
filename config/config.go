package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	RedisAddr     string
	RedisPassword string

	SessionSecret string
	SessionTTL    time.Duration

	StripeKey string
	// CheckoutFallbackAmount is charged (in whole currency units) when a
	// checkout starts with no subtotal in the session. The historical
	// default is 1; product owners have been asked whether that is
	// intentional, so it stays configurable instead of hardcoded.
	CheckoutFallbackAmount int64
	Currency               string

	MistralKey string

	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    durationEnv("SESSION_TTL", time.Hour),

		StripeKey:              os.Getenv("STRIPE_TEST_API_KEY"),
		CheckoutFallbackAmount: int64Env("CHECKOUT_FALLBACK_AMOUNT", 1),
		Currency:               stringEnv("CHECKOUT_CURRENCY", "usd"),

		MistralKey: os.Getenv("MISTRAL_API_KEY"),

		CORSOrigins: splitEnv("CORS_ORIGINS", []string{
			"http://127.0.0.1:5173",
			"http://localhost:5173",
		}),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}

	return cfg
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func int64Env(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitEnv(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
