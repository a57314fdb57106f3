package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// jsPublisher ส่วนของ jetstream.JetStream ที่ publisher ใช้
type jsPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// EventPublisher publishes todo lifecycle events to JetStream
type EventPublisher struct {
	js jsPublisher
}

var _ ports.TodoEventPort = (*EventPublisher)(nil)

// NewEventPublisher สร้าง EventPublisher ใหม่
func NewEventPublisher(client *Client) *EventPublisher {
	return newEventPublisher(client.JetStream())
}

func newEventPublisher(js jsPublisher) *EventPublisher {
	return &EventPublisher{js: js}
}

// Publish ส่ง event ไปที่ todos.events.<type>
func (p *EventPublisher) Publish(ctx context.Context, event *models.TodoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := SubjectFor(event.Type)
	ack, err := p.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Todo event published",
		"subject", subject,
		"todo_id", event.TodoID,
		"sequence", ack.Sequence,
	)
	return nil
}
