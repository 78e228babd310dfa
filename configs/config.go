package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	StripeSecretKey      string
	StripePublishableKey string
	MerchantDisplayName  string
	Currency             string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := &Config{
		DBSource:             getEnv("DB_SOURCE", "fastfood.db"),
		Port:                 getEnv("PORT", "8000"),
		JWTSecret:            getEnv("JWT_SECRET", "changeme"),
		JWTTTL:               time.Duration(24) * time.Hour,
		StripeSecretKey:      os.Getenv("STRIPE_SECRET_KEY"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		MerchantDisplayName:  getEnv("MERCHANT_DISPLAY_NAME", "Food Ordering App"),
		Currency:             getEnv("CURRENCY", "usd"),
	}

	// payment credentials are required up front, not at first charge
	if cfg.StripeSecretKey == "" {
		log.Fatal("missing env: STRIPE_SECRET_KEY")
	}
	if cfg.StripePublishableKey == "" {
		log.Fatal("missing env: STRIPE_PUBLISHABLE_KEY")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
