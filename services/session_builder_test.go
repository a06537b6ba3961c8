package services_test

import (
	"testing"

	"payment-gateway/models"
	"payment-gateway/services"

	"github.com/stretchr/testify/assert"
)

func TestBuildCheckoutSessionParams_MapsEveryLineItem(t *testing.T) {
	req := models.PaymentSessionRequest{
		OrderID:  "ord_42",
		Currency: "usd",
		Items: []models.PaymentSessionItem{
			{Name: "Keyboard", Price: 20.00, Quantity: 1},
			{Name: "Mouse", Price: 15.0, Quantity: 2},
			{Name: "Cable", Price: 19.99, Quantity: 3},
		},
	}

	params := services.BuildCheckoutSessionParams(req, "https://shop/success", "https://shop/cancel")

	assert.Len(t, params.LineItems, 3)

	wantAmounts := []int64{2000, 1500, 1999}
	wantQuantities := []int64{1, 2, 3}
	for i, li := range params.LineItems {
		assert.Equal(t, "usd", *li.PriceData.Currency)
		assert.Equal(t, req.Items[i].Name, *li.PriceData.ProductData.Name)
		assert.Equal(t, wantAmounts[i], *li.PriceData.UnitAmount)
		assert.Equal(t, wantQuantities[i], *li.Quantity)
	}
}

func TestBuildCheckoutSessionParams_RoundsHalfAwayFromZero(t *testing.T) {
	req := models.PaymentSessionRequest{
		OrderID:  "ord_1",
		Currency: "eur",
		Items: []models.PaymentSessionItem{
			// 10.125 is exactly representable, so the product is exactly 1012.5.
			{Name: "Widget", Price: 10.125, Quantity: 1},
		},
	}

	params := services.BuildCheckoutSessionParams(req, "s", "c")

	assert.Equal(t, int64(1013), *params.LineItems[0].PriceData.UnitAmount)
}

func TestBuildCheckoutSessionParams_AttachesOrderMetadataAndMode(t *testing.T) {
	req := models.PaymentSessionRequest{
		OrderID:  "ord_meta",
		Currency: "usd",
		Items:    []models.PaymentSessionItem{{Name: "Thing", Price: 1, Quantity: 1}},
	}

	params := services.BuildCheckoutSessionParams(req, "https://shop/success", "https://shop/cancel")

	assert.Equal(t, "ord_meta", params.PaymentIntentData.Metadata["orderId"])
	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "https://shop/success", *params.SuccessURL)
	assert.Equal(t, "https://shop/cancel", *params.CancelURL)
}
