package nats

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/domain/models"
	"todo-backend/pkg/logger"
)

type fakeJetStream struct {
	subject string
	data    []byte
	err     error
}

func (f *fakeJetStream) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.subject = subject
	f.data = data
	return &jetstream.PubAck{Stream: StreamName, Sequence: 1}, nil
}

func TestSubjectFor(t *testing.T) {
	assert.Equal(t, "todos.events.todo.created", SubjectFor(models.TodoEventCreated))
	assert.Equal(t, "todos.events.todo.attached", SubjectFor(models.TodoEventAttached))
}

func TestEventPublisher_Publish(t *testing.T) {
	js := &fakeJetStream{}
	p := newEventPublisher(js)

	event := models.NewTodoEvent(models.TodoEventAttached, "todo-1", "user-1")
	event.AttachmentURL = "http://files/att-1"
	require.NoError(t, p.Publish(context.Background(), event))

	assert.Equal(t, "todos.events.todo.attached", js.subject)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(js.data, &got))
	assert.Equal(t, "todo.attached", got["type"])
	assert.Equal(t, "todo-1", got["todoId"])
	assert.Equal(t, "user-1", got["userId"])
	assert.Equal(t, "http://files/att-1", got["attachmentUrl"])
}

func TestEventPublisher_PublishError(t *testing.T) {
	p := newEventPublisher(&fakeJetStream{err: errors.New("no responders")})

	err := p.Publish(context.Background(), models.NewTodoEvent(models.TodoEventDeleted, "todo-1", "user-1"))
	assert.ErrorContains(t, err, "todos.events.todo.deleted")
}

func TestNoopEventPublisher(t *testing.T) {
	p := NewNoopEventPublisher()
	assert.NoError(t, p.Publish(context.Background(), models.NewTodoEvent(models.TodoEventCreated, "t", "u")))
}

func TestEventPublisher_LogsWithRequestContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := logger.ContextWithRequestID(context.Background(), "req-42")
	p := newEventPublisher(&fakeJetStream{})
	require.NoError(t, p.Publish(ctx, models.NewTodoEvent(models.TodoEventCreated, "todo-1", "user-1")))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Todo event published", line["msg"])
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "todos.events.todo.created", line["subject"])
}
