package main

import (
	"log"
	"strings"

	"payment-gateway/config"
	"payment-gateway/controllers"
	"payment-gateway/kafka"
	"payment-gateway/middleware"
	"payment-gateway/routes"
	"payment-gateway/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[PaymentGateway] Failed to load config: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("[PaymentGateway] Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	if n := len(cfg.StripeWebhookSecret); n >= 6 {
		logger.Debug("Stripe webhook secret loaded",
			zap.String("suffix", cfg.StripeWebhookSecret[n-6:]))
	} else {
		logger.Warn("Stripe webhook secret is not configured; webhook deliveries will fail with 500")
	}

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookSecret)

	producer := kafka.NewSettlementEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic, logger)
	defer producer.Close()

	processor := services.NewSettlementProcessor(stripeSvc, producer, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	pc := &controllers.PaymentController{
		Stripe:     stripeSvc,
		Processor:  processor,
		SuccessURL: cfg.StripeSuccessURL,
		CancelURL:  cfg.StripeCancelURL,
		Logger:     logger,
	}
	routes.RegisterPaymentRoutes(r, pc)

	logger.Info("Payment gateway running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[PaymentGateway] Server failed: ", err)
	}
}
