package services

import (
	"context"

	"todo-backend/domain/dto"
	"todo-backend/domain/models"
)

type TodoService interface {
	ListTodos(ctx context.Context, userID string) ([]*models.TodoItem, error)
	CreateTodo(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*models.TodoItem, error)
	UpdateTodo(ctx context.Context, userID, todoID string, patch models.TodoUpdate) error
	DeleteTodo(ctx context.Context, userID, todoID string) error
	AttachFile(ctx context.Context, userID, todoID, attachmentID string) error
	// GetUploadURL ไม่ตรวจ ownership
	GetUploadURL(ctx context.Context, attachmentID string) (string, error)
}
