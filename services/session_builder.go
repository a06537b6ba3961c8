package services

import (
	"math"

	"payment-gateway/models"

	"github.com/stripe/stripe-go/v80"
)

// BuildCheckoutSessionParams maps a validated payment session request to the
// Stripe checkout session parameters. The order ID rides along as
// payment-intent metadata so it is still available when the settlement
// webhook arrives.
//
// Unit amounts are converted to the currency's minor unit with
// round-half-away-from-zero (math.Round), so 10.125 bills as 1013.
func BuildCheckoutSessionParams(req models.PaymentSessionRequest, successURL, cancelURL string) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(req.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	return &stripe.CheckoutSessionParams{
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"orderId": req.OrderID},
		},
		LineItems:  lineItems,
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
}
