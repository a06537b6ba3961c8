package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port                string
	StripeSecretKey     string
	StripeWebhookSecret string
	StripeSuccessURL    string
	StripeCancelURL     string
	KafkaBrokers        string
	KafkaTopic          string // topic for normalized settlement events
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:                getEnv("PORT", "8087"),
		StripeSecretKey:     os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeSuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:8087/payments/success"),
		StripeCancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:8087/payments/cancel"),
		KafkaBrokers:        getEnv("KAFKA_BROKERS", "localhost:9092"),
		KafkaTopic:          getEnv("KAFKA_TOPIC", "payment.succeeded"),
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("missing required environment variable STRIPE_API_KEY")
	}

	// A missing webhook secret is deliberately not fatal at startup: the
	// webhook handler reports it as a 500 per request, so session creation
	// keeps working until the service is redeployed with correct config.
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
