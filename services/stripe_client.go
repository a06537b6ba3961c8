package services

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/charge"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/webhook"
)

var (
	// ErrMissingSignature means the request carried no Stripe-Signature
	// header at all. Checked before the secret so a forged request cannot
	// probe deployment state.
	ErrMissingSignature = errors.New("missing Stripe-Signature header")

	// ErrMissingWebhookSecret means the service was deployed without an
	// endpoint secret. This is a configuration error, not a bad request.
	ErrMissingWebhookSecret = errors.New("stripe webhook secret is not configured")
)

// Gateway is the call surface over Stripe used by the controllers and the
// settlement processor. Tests substitute it with concrete fakes.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error)
	GetCharge(ctx context.Context, id string) (*stripe.Charge, error)
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}

type StripeService struct {
	SecretKey     string
	WebhookSecret string
}

func NewStripeService(secretKey, webhookSecret string) *StripeService {
	stripe.Key = secretKey
	return &StripeService{SecretKey: secretKey, WebhookSecret: webhookSecret}
}

func (s *StripeService) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return session.New(params)
}

// GetPaymentIntent retrieves a payment intent with latest_charge expanded
// inline, so a follow-up charge fetch is usually unnecessary.
func (s *StripeService) GetPaymentIntent(ctx context.Context, id string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	params.AddExpand("latest_charge")
	return paymentintent.Get(id, params)
}

func (s *StripeService) GetCharge(ctx context.Context, id string) (*stripe.Charge, error) {
	params := &stripe.ChargeParams{}
	params.Context = ctx
	return charge.Get(id, params)
}

// VerifyWebhook checks the signature of a raw webhook payload and returns the
// parsed event. The payload is verified exactly as received, never mutated or
// re-serialized.
func (s *StripeService) VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	if sigHeader == "" {
		return stripe.Event{}, ErrMissingSignature
	}
	if s.WebhookSecret == "" {
		return stripe.Event{}, ErrMissingWebhookSecret
	}
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookSecret)
}
