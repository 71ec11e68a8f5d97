package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config carries every runtime setting the application needs. It is
// built once in main and passed down; no package holds a mutable copy
// of the JWT secret or gateway credentials.
type Config struct {
	Port        string
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret string
	TokenTTL  time.Duration
	GuestTTL  time.Duration

	// Canonical pricing policy applied to both cart totals and order
	// totals. Tax is a rate on the items total, shipping is flat.
	TaxRate      decimal.Decimal
	ShippingCost decimal.Decimal

	UploadDir string
	BackupDir string

	RedisAddr     string
	RedisPassword string

	Gateway GatewayConfig
}

// GatewayConfig configures the external payment gateway client.
type GatewayConfig struct {
	BaseURL    string
	MerchantID string
	PublicKey  string
	PrivateKey string
	Sandbox    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  72 * time.Hour,
		GuestTTL:  24 * time.Hour,

		TaxRate:      decimal.Zero,
		ShippingCost: decimal.Zero,

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		BackupDir: getEnv("BACKUP_DIR", "./backup/uploads"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		Gateway: GatewayConfig{
			BaseURL:    os.Getenv("GATEWAY_API_URL"),
			MerchantID: os.Getenv("GATEWAY_MERCHANT_ID"),
			PublicKey:  os.Getenv("GATEWAY_PUBLIC_KEY"),
			PrivateKey: os.Getenv("GATEWAY_PRIVATE_KEY"),
			Sandbox:    os.Getenv("GATEWAY_MODE") == "sandbox",
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	if v := os.Getenv("TAX_RATE"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TAX_RATE %q: %w", v, err)
		}
		cfg.TaxRate = rate
	}
	if v := os.Getenv("SHIPPING_COST"); v != "" {
		cost, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SHIPPING_COST %q: %w", v, err)
		}
		cfg.ShippingCost = cost
	}

	return cfg, nil
}

// DSN returns the postgres connection string, preferring DATABASE_URL.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
