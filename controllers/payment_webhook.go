package controllers

import (
	"errors"
	"net/http"

	"payment-gateway/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StripeWebhook receives Stripe webhook deliveries. The body is verified as
// raw bytes against the Stripe-Signature header before anything else touches
// it. Response codes drive Stripe's redelivery: 400 rejects the payload for
// good, 5xx asks for another delivery later.
func (pc *PaymentController) StripeWebhook(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := pc.Stripe.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSignature):
			pc.Logger.Warn("Webhook rejected: missing signature header")
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing Stripe-Signature header"})
		case errors.Is(err, services.ErrMissingWebhookSecret):
			pc.Logger.Error("Webhook secret is not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "server misconfiguration"})
		default:
			pc.Logger.Warn("Webhook signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "webhook signature verification failed"})
		}
		return
	}

	pc.Logger.Info("Processing Stripe webhook",
		zap.String("event_type", string(event.Type)),
		zap.String("event_id", event.ID),
	)

	if err := pc.Processor.HandleEvent(c.Request.Context(), event); err != nil {
		// Enrichment lookup or bus publish failed. Answering 5xx keeps the
		// settlement fact recoverable through Stripe's redelivery.
		pc.Logger.Error("Webhook processing failed",
			zap.String("event_id", event.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
