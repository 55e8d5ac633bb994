package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration. Values come from the
// process environment; cmd/app loads a .env file first via godotenv.
type Config struct {
	Addr           string
	DatabaseURL    string
	MigrationsPath string
	RedisAddr      string

	JWTSecret  string
	SessionTTL time.Duration

	PaymentBaseURL   string
	PaymentServerKey string

	ShippingBaseURL string
	ShippingAPIKey  string

	// Timeout for outbound calls to the payment gateway and the
	// region/rate provider.
	HTTPTimeout time.Duration
}

func Load() Config {
	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "./migrations"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		SessionTTL:       7 * 24 * time.Hour,
		PaymentBaseURL:   getEnv("PAYMENT_BASE_URL", "https://app.sandbox.midtrans.com"),
		PaymentServerKey: os.Getenv("PAYMENT_SERVER_KEY"),
		ShippingBaseURL:  getEnv("SHIPPING_BASE_URL", "https://rajaongkir.komerce.id/api/v1"),
		ShippingAPIKey:   os.Getenv("SHIPPING_API_KEY"),
		HTTPTimeout:      time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
