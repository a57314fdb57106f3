package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodoUpdate_Columns(t *testing.T) {
	name := "Buy milk"
	due := "2024-02-01"
	done := true
	notDone := false

	tests := []struct {
		name  string
		patch TodoUpdate
		want  map[string]interface{}
	}{
		{"empty", TodoUpdate{}, map[string]interface{}{}},
		{"name only", TodoUpdate{Name: &name}, map[string]interface{}{"name": "Buy milk"}},
		{"due date only", TodoUpdate{DueDate: &due}, map[string]interface{}{"due_date": "2024-02-01"}},
		{"done only", TodoUpdate{Done: &done}, map[string]interface{}{"done": true}},
		{"done false is kept", TodoUpdate{Done: &notDone}, map[string]interface{}{"done": false}},
		{"name and done", TodoUpdate{Name: &name, Done: &done}, map[string]interface{}{"name": "Buy milk", "done": true}},
		{"all fields", TodoUpdate{Name: &name, DueDate: &due, Done: &notDone}, map[string]interface{}{
			"name":     "Buy milk",
			"due_date": "2024-02-01",
			"done":     false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Columns())
		})
	}
}

func TestTodoUpdate_IsEmpty(t *testing.T) {
	empty := ""
	assert.True(t, TodoUpdate{}.IsEmpty())
	assert.False(t, TodoUpdate{Name: &empty}.IsEmpty())
	assert.False(t, TodoUpdate{DueDate: &empty}.IsEmpty())
}

func TestTodoUpdate_Apply(t *testing.T) {
	url := "http://files/att-1"
	item := &TodoItem{
		TodoID:        "t1",
		UserID:        "u1",
		CreatedAt:     "2024-01-01T00:00:00.000Z",
		Name:          "old",
		DueDate:       "2024-01-01",
		Done:          true,
		AttachmentURL: &url,
	}

	due := "2024-03-01"
	notDone := false
	TodoUpdate{DueDate: &due, Done: &notDone}.Apply(item)

	assert.Equal(t, "old", item.Name)
	assert.Equal(t, "2024-03-01", item.DueDate)
	assert.False(t, item.Done)
	assert.Equal(t, "t1", item.TodoID)
	assert.Equal(t, "u1", item.UserID)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", item.CreatedAt)
	assert.Equal(t, &url, item.AttachmentURL)
}

func TestTodoItem_IsOwnedBy(t *testing.T) {
	item := &TodoItem{UserID: "u1"}
	assert.True(t, item.IsOwnedBy("u1"))
	assert.False(t, item.IsOwnedBy("u2"))
	assert.False(t, item.IsOwnedBy(""))
}
