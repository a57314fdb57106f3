package models

import "time"

// TodoEventType ชนิดของ lifecycle event
type TodoEventType string

const (
	TodoEventCreated  TodoEventType = "todo.created"
	TodoEventUpdated  TodoEventType = "todo.updated"
	TodoEventDeleted  TodoEventType = "todo.deleted"
	TodoEventAttached TodoEventType = "todo.attached"
)

// TodoEvent - Plain struct (ไม่มี NATS dependency)
type TodoEvent struct {
	Type          TodoEventType `json:"type"`
	TodoID        string        `json:"todoId"`
	UserID        string        `json:"userId"`
	AttachmentURL string        `json:"attachmentUrl,omitempty"`
	OccurredAt    time.Time     `json:"occurredAt"`
}

func NewTodoEvent(eventType TodoEventType, todoID, userID string) *TodoEvent {
	return &TodoEvent{
		Type:       eventType,
		TodoID:     todoID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}
