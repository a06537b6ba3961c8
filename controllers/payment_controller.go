package controllers

import (
	"net/http"

	"payment-gateway/models"
	"payment-gateway/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	Stripe     services.Gateway
	Processor  *services.SettlementProcessor
	SuccessURL string
	CancelURL  string
	Logger     *zap.Logger
}

// CreatePaymentSession builds a hosted checkout session for an order.
// Called by the order service with the order's currency and line items.
func (pc *PaymentController) CreatePaymentSession(c *gin.Context) {
	var req models.PaymentSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := services.BuildCheckoutSessionParams(req, pc.SuccessURL, pc.CancelURL)

	sess, err := pc.Stripe.CreateCheckoutSession(c.Request.Context(), params)
	if err != nil {
		// Provider errors are bubbled verbatim, no local wrapping.
		pc.Logger.Error("Stripe checkout session creation failed",
			zap.String("order_id", req.OrderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.Logger.Info("Checkout session created",
		zap.String("order_id", req.OrderID),
		zap.Int("line_items", len(req.Items)),
	)

	c.JSON(http.StatusOK, models.PaymentSessionResult{
		URL:        sess.URL,
		SuccessURL: sess.SuccessURL,
		CancelURL:  sess.CancelURL,
	})
}

// Success is the static landing target Stripe redirects to after payment.
func (pc *PaymentController) Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Payment successful"})
}

// Cancel is the static landing target for an abandoned checkout.
func (pc *PaymentController) Cancel(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": false, "message": "Payment cancelled"})
}
