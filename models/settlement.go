package models

// SettlementEvent is the normalized payment.succeeded fact published to the
// order service. ReceiptURL is a pointer so an unresolved receipt serializes
// as an explicit null rather than an empty string.
type SettlementEvent struct {
	StripePaymentID string  `json:"stripePaymentId"`
	OrderID         string  `json:"orderId"`
	ReceiptURL      *string `json:"receiptUrl"`
}
