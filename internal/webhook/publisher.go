package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Bambyboi/skinet/internal/domain"
)

const statusTopic = "order-status"

// KafkaPublisher emits order-status events keyed by payment-intent id so a
// partition preserves per-order ordering.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  statusTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishStatusChange(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(map[string]interface{}{
		"order_id":          order.ID,
		"payment_intent_id": order.PaymentIntentID,
		"status":            order.Status,
		"updated_at":        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal order status payload: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.PaymentIntentID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("order.status_changed")},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
