package dto

type CreateTodoRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	DueDate string `json:"dueDate" validate:"omitempty,max=64"`
}

// UpdateTodoRequest field ที่ไม่ส่งมา (nil) จะไม่ถูกแก้ไข
type UpdateTodoRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	DueDate *string `json:"dueDate" validate:"omitempty,max=64"`
	Done    *bool   `json:"done"`
}

type AttachFileRequest struct {
	AttachmentID string `json:"attachmentId" validate:"required,attachmentid"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
}

type TodoResponse struct {
	TodoID        string  `json:"todoId"`
	UserID        string  `json:"userId"`
	CreatedAt     string  `json:"createdAt"`
	Name          string  `json:"name"`
	DueDate       string  `json:"dueDate"`
	Done          bool    `json:"done"`
	AttachmentURL *string `json:"attachmentUrl"`
}
