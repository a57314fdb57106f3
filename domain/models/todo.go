package models

import "time"

// CreatedAtLayout รูปแบบ timestamp ของ createdAt (RFC 3339 UTC, millisecond)
// เรียงตามตัวอักษรได้ตรงกับลำดับเวลา
const CreatedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// TodoItem คือ todo ของ user หนึ่งคน
// UserID, TodoID, CreatedAt ไม่เปลี่ยนหลังสร้าง
type TodoItem struct {
	TodoID        string  `gorm:"primaryKey;column:todo_id;type:varchar(64)" json:"todoId"`
	UserID        string  `gorm:"not null;column:user_id;index:idx_todos_user_id" json:"userId"`
	CreatedAt     string  `gorm:"not null;column:created_at" json:"createdAt"`
	Name          string  `gorm:"not null" json:"name"`
	DueDate       string  `gorm:"column:due_date" json:"dueDate"`
	Done          bool    `gorm:"not null;default:false" json:"done"`
	AttachmentURL *string `gorm:"column:attachment_url" json:"attachmentUrl"`
}

func (TodoItem) TableName() string {
	return "todos"
}

// IsOwnedBy ตรวจสอบว่า userID เป็นเจ้าของ item
func (t *TodoItem) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}

// FormatCreatedAt แปลงเวลาเป็น string ตาม CreatedAtLayout
func FormatCreatedAt(t time.Time) string {
	return t.UTC().Format(CreatedAtLayout)
}

// TodoUpdate partial patch; nil field = ไม่เปลี่ยน
type TodoUpdate struct {
	Name    *string `json:"name,omitempty"`
	DueDate *string `json:"dueDate,omitempty"`
	Done    *bool   `json:"done,omitempty"`
}

// IsEmpty true ถ้าไม่มี field ไหนถูกส่งมา
func (u TodoUpdate) IsEmpty() bool {
	return u.Name == nil && u.DueDate == nil && u.Done == nil
}

// Apply เขียนเฉพาะ field ที่มีค่าลงใน item
func (u TodoUpdate) Apply(item *TodoItem) {
	if u.Name != nil {
		item.Name = *u.Name
	}
	if u.DueDate != nil {
		item.DueDate = *u.DueDate
	}
	if u.Done != nil {
		item.Done = *u.Done
	}
}

// Columns คืน map column -> value สำหรับ partial update
func (u TodoUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.DueDate != nil {
		cols["due_date"] = *u.DueDate
	}
	if u.Done != nil {
		cols["done"] = *u.Done
	}
	return cols
}
