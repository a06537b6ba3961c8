package services

import (
	"context"
	"encoding/json"
	"fmt"

	"payment-gateway/models"

	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// SettlementPublisher pushes a normalized settlement fact onto the message
// bus. Publish must complete before the webhook is acknowledged, so a failure
// can still surface as a 5xx and trigger Stripe's redelivery.
type SettlementPublisher interface {
	PublishSettlement(ctx context.Context, event models.SettlementEvent) error
}

// SettlementProcessor dispatches verified Stripe events and turns successful
// charges into payment.succeeded facts for the order service.
type SettlementProcessor struct {
	gateway   Gateway
	publisher SettlementPublisher
	logger    *zap.Logger
}

func NewSettlementProcessor(gateway Gateway, publisher SettlementPublisher, logger *zap.Logger) *SettlementProcessor {
	return &SettlementProcessor{gateway: gateway, publisher: publisher, logger: logger}
}

// HandleEvent routes a verified event by type. Stripe sends every subscribed
// event kind to this endpoint, so unhandled types are acknowledged, not
// errors. A non-nil return means an upstream call failed and the webhook
// should answer 5xx so Stripe redelivers.
func (p *SettlementProcessor) HandleEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "charge.succeeded":
		return p.handleChargeSucceeded(ctx, event)
	default:
		p.logger.Warn("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
		return nil
	}
}

// handleChargeSucceeded resolves the orderId and receipt URL for a settled
// charge, preferring data already embedded in the event and falling back to
// at most two Stripe lookups, then publishes the normalized fact.
func (p *SettlementProcessor) handleChargeSucceeded(ctx context.Context, event stripe.Event) error {
	var ch stripe.Charge
	if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
		p.logger.Error("Failed to unmarshal charge payload",
			zap.String("event_id", event.ID), zap.Error(err))
		return nil
	}

	orderID := ch.Metadata["orderId"]
	receiptURL := ch.ReceiptURL

	// The event payload may omit either field. If the charge points at its
	// payment intent by reference, one retrieve with latest_charge expanded
	// recovers both in a single round trip.
	if (orderID == "" || receiptURL == "") && isIntentReference(ch.PaymentIntent) {
		pi, err := p.gateway.GetPaymentIntent(ctx, ch.PaymentIntent.ID)
		if err != nil {
			return fmt.Errorf("retrieve payment intent %s: %w", ch.PaymentIntent.ID, err)
		}

		if orderID == "" {
			orderID = pi.Metadata["orderId"]
		}

		if receiptURL == "" && pi.LatestCharge != nil {
			if isChargeInline(pi.LatestCharge) {
				receiptURL = pi.LatestCharge.ReceiptURL
			} else {
				latest, err := p.gateway.GetCharge(ctx, pi.LatestCharge.ID)
				if err != nil {
					return fmt.Errorf("retrieve charge %s: %w", pi.LatestCharge.ID, err)
				}
				receiptURL = latest.ReceiptURL
			}
		}
	}

	if orderID == "" {
		// Cannot correlate the payment to an order; redelivery would not
		// change that, so acknowledge without emitting.
		p.logger.Warn("charge.succeeded without derivable orderId, suppressing emission",
			zap.String("charge_id", ch.ID))
		return nil
	}

	fact := models.SettlementEvent{
		StripePaymentID: ch.ID,
		OrderID:         orderID,
	}
	if receiptURL != "" {
		fact.ReceiptURL = &receiptURL
	}

	if err := p.publisher.PublishSettlement(ctx, fact); err != nil {
		return fmt.Errorf("publish settlement for charge %s: %w", ch.ID, err)
	}

	p.logger.Info("Published payment.succeeded",
		zap.String("charge_id", ch.ID),
		zap.String("order_id", orderID),
	)
	return nil
}

// isIntentReference reports whether the charge carries its payment intent as
// a bare id. Stripe serializes unexpanded fields as plain strings, which the
// SDK unmarshals into a struct holding only the ID; the object marker is set
// only for inline payloads.
func isIntentReference(pi *stripe.PaymentIntent) bool {
	return pi != nil && pi.ID != "" && pi.Object == ""
}

func isChargeInline(ch *stripe.Charge) bool {
	return ch.Object != ""
}
