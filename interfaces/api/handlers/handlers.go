package handlers

import (
	"todo-backend/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	TodoService   services.TodoService
	LocalStore    ObjectWriter // nil เมื่อ STORAGE_TYPE ไม่ใช่ local
	MaxUploadSize int64
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TodoHandler       *TodoHandler
	AttachmentHandler *AttachmentHandler
	FileUploadHandler *FileUploadHandler // nil เมื่อไม่ได้ใช้ local storage
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	h := &Handlers{
		TodoHandler:       NewTodoHandler(services.TodoService),
		AttachmentHandler: NewAttachmentHandler(services.TodoService),
	}
	if services.LocalStore != nil {
		h.FileUploadHandler = NewFileUploadHandler(services.LocalStore, services.MaxUploadSize)
	}
	return h
}
