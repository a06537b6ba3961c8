package models

// PaymentSessionItem is a single order line as sent by the order service.
// Price is in major currency units; conversion to the minor unit happens
// when the Stripe line item is built.
type PaymentSessionItem struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int64   `json:"quantity" binding:"required,gt=0"`
}

type PaymentSessionRequest struct {
	OrderID  string               `json:"orderId" binding:"required"`
	Currency string               `json:"currency" binding:"required"`
	Items    []PaymentSessionItem `json:"items" binding:"required,min=1,dive"`
}

// PaymentSessionResult carries the redirect URLs returned by Stripe.
// Nothing is persisted; the caller owns what happens with the URLs.
type PaymentSessionResult struct {
	URL        string `json:"url"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}
