package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"festProApi/internal/platform/events"
)

// KafkaPublisher pushes entity change events to a Kafka topic so downstream
// consumers (realtime gateways, analytics) can react to back-office writes.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher returns nil when no brokers are configured; callers treat
// a nil publisher as "Kafka disabled".
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

// Publish encodes and writes the event. Failures are logged and swallowed:
// a broker outage must never fail the HTTP write that produced the event.
func (p *KafkaPublisher) Publish(ctx context.Context, event events.Event) {
	if p == nil || p.writer == nil {
		return
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("kafka event marshal error", slog.String("topic", event.Topic), slog.Any("error", err))
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.ResourceID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		slog.Warn("kafka publish failed",
			slog.String("topic", event.Topic),
			slog.String("entity", event.Entity),
			slog.String("action", event.Action),
			slog.String("resourceId", event.ResourceID),
			slog.Any("error", err),
		)
		return
	}
	slog.Info("kafka event published",
		slog.String("topic", event.Topic),
		slog.String("entity", event.Entity),
		slog.String("action", event.Action),
		slog.String("resourceId", event.ResourceID),
	)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

var _ events.Publisher = (*KafkaPublisher)(nil)
