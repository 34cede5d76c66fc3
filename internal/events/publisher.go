package events

import (
	"context"
	"encoding/json"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher publishes trip lifecycle events to Kafka. A Publisher built
// without brokers is disabled: publishes become no-ops so the service runs
// without a broker in single-user setups.
type Publisher struct {
	writer *kafkago.Writer
	source string
	logger *zap.Logger
}

// NewPublisher creates a Publisher for the given brokers. Pass an empty
// broker list to disable publishing.
func NewPublisher(brokers []string, source string, logger *zap.Logger) *Publisher {
	p := &Publisher{source: source, logger: logger}
	if len(brokers) == 0 {
		return p
	}
	p.writer = &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return p
}

// Publish wraps data in a CloudEvent and writes it to the topic. Failures
// are returned to the caller, which treats publishing as best-effort.
func (p *Publisher) Publish(ctx context.Context, topic, eventType, key string, data any) error {
	if p.writer == nil {
		return nil
	}

	event, err := NewCloudEvent(p.source, eventType, data)
	if err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal cloud event: %w", err)
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", eventType, topic, err)
	}

	p.logger.Debug("published event",
		zap.String("topic", topic),
		zap.String("type", eventType),
	)
	return nil
}

// Close closes the underlying Kafka writer.
func (p *Publisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
