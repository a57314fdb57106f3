package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"todo-backend/domain/dto"
	"todo-backend/domain/errs"
	"todo-backend/domain/models"
	"todo-backend/domain/ports"
	"todo-backend/domain/repositories"
	"todo-backend/domain/services"
	"todo-backend/pkg/logger"
)

type TodoServiceImpl struct {
	todoRepo repositories.TodoRepository
	storage  ports.AttachmentStoragePort
	events   ports.TodoEventPort
	now      func() time.Time
	newID    func() string
}

func NewTodoService(todoRepo repositories.TodoRepository, storage ports.AttachmentStoragePort, events ports.TodoEventPort) services.TodoService {
	return &TodoServiceImpl{
		todoRepo: todoRepo,
		storage:  storage,
		events:   events,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

func (s *TodoServiceImpl) ListTodos(ctx context.Context, userID string) ([]*models.TodoItem, error) {
	logger.InfoContext(ctx, "Retrieving todos")

	items, err := s.todoRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list todos", "error", err)
		return nil, err
	}
	return items, nil
}

func (s *TodoServiceImpl) CreateTodo(ctx context.Context, userID string, req *dto.CreateTodoRequest) (*models.TodoItem, error) {
	item := &models.TodoItem{
		TodoID:        s.newID(),
		UserID:        userID,
		CreatedAt:     models.FormatCreatedAt(s.now()),
		Name:          req.Name,
		DueDate:       req.DueDate,
		Done:          false,
		AttachmentURL: nil,
	}

	if err := s.todoRepo.Create(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to create todo", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Todo created", "todo_id", item.TodoID)
	s.publish(ctx, models.NewTodoEvent(models.TodoEventCreated, item.TodoID, userID))

	return item, nil
}

func (s *TodoServiceImpl) UpdateTodo(ctx context.Context, userID, todoID string, patch models.TodoUpdate) error {
	logger.InfoContext(ctx, "Updating todo", "todo_id", todoID)

	if _, err := s.authorize(ctx, userID, todoID, "update"); err != nil {
		return err
	}

	if err := s.todoRepo.Update(ctx, todoID, patch); err != nil {
		logger.ErrorContext(ctx, "Failed to update todo", "todo_id", todoID, "error", err)
		return err
	}

	s.publish(ctx, models.NewTodoEvent(models.TodoEventUpdated, todoID, userID))
	return nil
}

func (s *TodoServiceImpl) DeleteTodo(ctx context.Context, userID, todoID string) error {
	logger.InfoContext(ctx, "Deleting todo", "todo_id", todoID)

	if _, err := s.authorize(ctx, userID, todoID, "delete"); err != nil {
		return err
	}

	if err := s.todoRepo.Delete(ctx, todoID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete todo", "todo_id", todoID, "error", err)
		return err
	}

	s.publish(ctx, models.NewTodoEvent(models.TodoEventDeleted, todoID, userID))
	return nil
}

// AttachFile สร้าง download URL ก่อนตรวจ ownership (URL เป็นแค่การคำนวณ ไม่ได้จองอะไร)
func (s *TodoServiceImpl) AttachFile(ctx context.Context, userID, todoID, attachmentID string) error {
	logger.InfoContext(ctx, "Generating attachment URL", "attachment_id", attachmentID)

	attachmentURL, err := s.storage.DownloadURL(ctx, attachmentID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate attachment URL", "attachment_id", attachmentID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Updating todo attachment URL", "todo_id", todoID, "attachment_url", attachmentURL)

	if _, err := s.authorize(ctx, userID, todoID, "attach"); err != nil {
		return err
	}

	if err := s.todoRepo.SetAttachmentURL(ctx, todoID, attachmentURL); err != nil {
		logger.ErrorContext(ctx, "Failed to set attachment URL", "todo_id", todoID, "error", err)
		return err
	}

	event := models.NewTodoEvent(models.TodoEventAttached, todoID, userID)
	event.AttachmentURL = attachmentURL
	s.publish(ctx, event)
	return nil
}

func (s *TodoServiceImpl) GetUploadURL(ctx context.Context, attachmentID string) (string, error) {
	logger.InfoContext(ctx, "Generating upload URL", "attachment_id", attachmentID)

	uploadURL, err := s.storage.UploadURL(ctx, attachmentID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate upload URL", "attachment_id", attachmentID, "error", err)
		return "", err
	}
	return uploadURL, nil
}

// authorize fetch-by-id -> absence check -> owner check
// ไม่ atomic: ถ้ามีการลบระหว่าง fetch กับ write ให้ store เป็นคนตัดสิน
func (s *TodoServiceImpl) authorize(ctx context.Context, userID, todoID, action string) (*models.TodoItem, error) {
	item, err := s.todoRepo.GetByID(ctx, todoID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch todo", "todo_id", todoID, "error", err)
		return nil, err
	}

	if item == nil {
		logger.WarnContext(ctx, "Todo not found", "todo_id", todoID, "action", action)
		return nil, errs.ErrNotFound
	}

	if !item.IsOwnedBy(userID) {
		logger.WarnContext(ctx, "User does not have permission on todo",
			"todo_id", todoID,
			"action", action,
		)
		return nil, errs.ErrForbidden
	}

	return item, nil
}

func (s *TodoServiceImpl) publish(ctx context.Context, event *models.TodoEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish todo event",
			"type", event.Type,
			"todo_id", event.TodoID,
			"error", err,
		)
	}
}
