package repositories

import (
	"context"

	"todo-backend/domain/models"
)

// TodoRepository record store ของ todo items
// error ทุกตัวที่ return เป็น *errs.StoreError
type TodoRepository interface {
	// ListByUser todo ทั้งหมดของ user (ลำดับตาม store)
	ListByUser(ctx context.Context, userID string) ([]*models.TodoItem, error)

	// GetByID return (nil, nil) ถ้าไม่พบ
	GetByID(ctx context.Context, todoID string) (*models.TodoItem, error)

	// Create error ถ้า todoID ซ้ำ
	Create(ctx context.Context, item *models.TodoItem) error

	// Update เขียนเฉพาะ field ที่มีใน patch, ไม่ตรวจสอบว่ามี record ก่อน
	Update(ctx context.Context, todoID string, patch models.TodoUpdate) error

	Delete(ctx context.Context, todoID string) error

	SetAttachmentURL(ctx context.Context, todoID string, url string) error
}
