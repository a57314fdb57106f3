package nats

import (
	"context"

	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/pkg/logger"
)

// NoopEventPublisher ใช้เมื่อไม่ได้ตั้งค่า NATS หรือเชื่อมต่อไม่ได้
type NoopEventPublisher struct{}

var _ ports.TodoEventPort = (*NoopEventPublisher)(nil)

func NewNoopEventPublisher() *NoopEventPublisher {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) Publish(ctx context.Context, event *models.TodoEvent) error {
	logger.DebugContext(ctx, "Event dropped (NATS disabled)", "type", event.Type, "todo_id", event.TodoID)
	return nil
}
