// Package events publishes engagement lifecycle events to Kafka. Publishing
// is best-effort telemetry: a broker outage never fails the originating
// operation.
package events

import (
	"context"
	"encoding/json"
	"time"

	"engagemate/internal/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Topic carries every product and comment mutation.
const Topic = "engagement-events"

// Event types.
const (
	TypeProductCreated   = "product.created"
	TypeProductUpdated   = "product.updated"
	TypeProductDeleted   = "product.deleted"
	TypeCommentGenerated = "comment.generated"
	TypeCommentPosted    = "comment.posted"
	TypeCommentFailed    = "comment.failed"
	TypeCommentDeleted   = "comment.deleted"
)

type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	EntityID  string                 `json:"entity_id"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Publisher emits lifecycle events. The zero-config deployment uses Nop.
type Publisher interface {
	Publish(ctx context.Context, eventType, entityID string, data map[string]interface{})
	Close() error
}

// KafkaPublisher writes events to the engagement topic.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *logger.Logger
}

func NewKafkaPublisher(brokers string, log *logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
	}
	return &KafkaPublisher{writer: writer, logger: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, entityID string, data map[string]interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		EntityID:  entityID,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event: %v", err)
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entityID),
		Value: payload,
	}); err != nil {
		p.logger.Error("failed to publish %s event: %v", eventType, err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Nop discards events when no broker is configured.
type Nop struct{}

func (Nop) Publish(ctx context.Context, eventType, entityID string, data map[string]interface{}) {}

func (Nop) Close() error { return nil }
