package services_test

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"payment-gateway/services"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"
)

const testWebhookSecret = "whsec_test_secret"

// eventPayload renders a minimal charge.succeeded event body. The api_version
// must match the SDK's pinned version or ConstructEvent rejects the event.
func eventPayload() []byte {
	return []byte(fmt.Sprintf(
		`{"id":"evt_1","object":"event","api_version":%q,"type":"charge.succeeded","data":{"object":{"id":"ch_1","object":"charge","metadata":{"orderId":"ord_9"},"receipt_url":"https://r/1"}}}`,
		stripe.APIVersion,
	))
}

func signPayload(payload []byte, secret string, at time.Time) string {
	sig := webhook.ComputeSignature(at, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func TestVerifyWebhook_MissingSignatureCheckedBeforeSecret(t *testing.T) {
	// Even with no secret configured, the absent header must win: a forged
	// request may not learn about deployment state.
	svc := services.NewStripeService("sk_test_x", "")

	_, err := svc.VerifyWebhook(eventPayload(), "")

	assert.ErrorIs(t, err, services.ErrMissingSignature)
}

func TestVerifyWebhook_MissingSecretWithValidHeader(t *testing.T) {
	svc := services.NewStripeService("sk_test_x", "")
	payload := eventPayload()
	header := signPayload(payload, testWebhookSecret, time.Now())

	_, err := svc.VerifyWebhook(payload, header)

	assert.ErrorIs(t, err, services.ErrMissingWebhookSecret)
}

func TestVerifyWebhook_ValidSignature(t *testing.T) {
	svc := services.NewStripeService("sk_test_x", testWebhookSecret)
	payload := eventPayload()
	header := signPayload(payload, testWebhookSecret, time.Now())

	event, err := svc.VerifyWebhook(payload, header)

	assert.NoError(t, err)
	assert.Equal(t, stripe.EventType("charge.succeeded"), event.Type)
	assert.Equal(t, "evt_1", event.ID)
}

func TestVerifyWebhook_TamperedBodyFails(t *testing.T) {
	svc := services.NewStripeService("sk_test_x", testWebhookSecret)
	payload := eventPayload()
	header := signPayload(payload, testWebhookSecret, time.Now())

	tampered := make([]byte, len(payload))
	copy(tampered, payload)
	tampered[len(tampered)/2] ^= 0x01

	_, err := svc.VerifyWebhook(tampered, header)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrMissingSignature)
	assert.NotErrorIs(t, err, services.ErrMissingWebhookSecret)
}

func TestVerifyWebhook_WrongSecretFails(t *testing.T) {
	svc := services.NewStripeService("sk_test_x", testWebhookSecret)
	payload := eventPayload()
	header := signPayload(payload, "whsec_other_secret", time.Now())

	_, err := svc.VerifyWebhook(payload, header)

	assert.Error(t, err)
}

func TestVerifyWebhook_IsDeterministic(t *testing.T) {
	svc := services.NewStripeService("sk_test_x", testWebhookSecret)
	payload := eventPayload()
	header := signPayload(payload, testWebhookSecret, time.Now())

	for i := 0; i < 3; i++ {
		_, err := svc.VerifyWebhook(payload, header)
		assert.NoError(t, err)
	}
}
