package routes

import (
	"payment-gateway/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(r *gin.Engine, pc *controllers.PaymentController) {
	payments := r.Group("/payments")
	payments.POST("/session", pc.CreatePaymentSession)
	payments.POST("/webhook", pc.StripeWebhook)
	payments.GET("/success", pc.Success)
	payments.GET("/cancel", pc.Cancel)
}
