package nats

import (
	"time"

	"todo-backend/domain/models"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Stream & Subject Names
// ═══════════════════════════════════════════════════════════════════════════════

const (
	// StreamName ชื่อ JetStream stream สำหรับ todo lifecycle events
	StreamName = "TODO_EVENTS"

	// SubjectPrefix prefix ของทุก event: todos.events.<type>
	SubjectPrefix = "todos.events"

	// SubjectAll wildcard สำหรับ stream
	SubjectAll = SubjectPrefix + ".>"

	// StreamMaxAge เก็บ event ไม่เกิน 7 วัน
	StreamMaxAge = 7 * 24 * time.Hour
)

// SubjectFor subject ของ event แต่ละประเภท เช่น todos.events.todo.created
func SubjectFor(eventType models.TodoEventType) string {
	return SubjectPrefix + "." + string(eventType)
}
