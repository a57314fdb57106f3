package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"todo-backend/domain/errs"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

type TodoRepositoryImpl struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) repositories.TodoRepository {
	return &TodoRepositoryImpl{db: db}
}

func (r *TodoRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*models.TodoItem, error) {
	var items []*models.TodoItem
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error
	if err != nil {
		return nil, errs.Store("list todos", err)
	}
	return items, nil
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, todoID string) (*models.TodoItem, error) {
	var item models.TodoItem
	err := r.db.WithContext(ctx).Where("todo_id = ?", todoID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.Store("get todo", err)
	}
	return &item, nil
}

func (r *TodoRepositoryImpl) Create(ctx context.Context, item *models.TodoItem) error {
	return errs.Store("create todo", r.db.WithContext(ctx).Create(item).Error)
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todoID string, patch models.TodoUpdate) error {
	if patch.IsEmpty() {
		return nil
	}
	return r.updateColumns(ctx, "update todo", todoID, patch.Columns())
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, todoID string) error {
	return errs.Store("delete todo", r.db.WithContext(ctx).Where("todo_id = ?", todoID).Delete(&models.TodoItem{}).Error)
}

func (r *TodoRepositoryImpl) SetAttachmentURL(ctx context.Context, todoID string, url string) error {
	return r.updateColumns(ctx, "set attachment url", todoID, map[string]interface{}{"attachment_url": url})
}

// updateColumns ถ้าไม่มี row ถูกแก้ไข ถือว่า record ไม่มีอยู่
func (r *TodoRepositoryImpl) updateColumns(ctx context.Context, op, todoID string, cols map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.TodoItem{}).Where("todo_id = ?", todoID).Updates(cols)
	if result.Error != nil {
		return errs.Store(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.Store(op, errs.ErrRecordMissing)
	}
	return nil
}
