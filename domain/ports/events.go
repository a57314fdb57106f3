package ports

import (
	"context"

	"todo-backend/domain/models"
)

// TodoEventPort - Interface สำหรับส่ง lifecycle events ของ todo
type TodoEventPort interface {
	Publish(ctx context.Context, event *models.TodoEvent) error
}
