package kafka

import (
	"context"
	"encoding/json"

	"payment-gateway/models"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// SettlementEventProducer publishes normalized settlement facts. There is no
// internal retry: the webhook handler maps a publish failure to a 5xx and
// Stripe's redelivery takes it from there.
type SettlementEventProducer struct {
	writer *kafka.Writer
	topic  string
	logger *zap.Logger
}

func NewSettlementEventProducer(brokers []string, topic string, logger *zap.Logger) *SettlementEventProducer {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	logger.Info("Settlement event producer initialized",
		zap.String("topic", topic),
		zap.Strings("brokers", brokers),
	)
	return &SettlementEventProducer{writer: w, topic: topic, logger: logger}
}

func (p *SettlementEventProducer) PublishSettlement(ctx context.Context, event models.SettlementEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish settlement event",
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info("Settlement event published",
		zap.String("topic", p.topic),
		zap.String("order_id", event.OrderID),
		zap.String("stripe_payment_id", event.StripePaymentID),
	)
	return nil
}

func (p *SettlementEventProducer) Close() {
	_ = p.writer.Close()
	p.logger.Info("Settlement event producer closed")
}
