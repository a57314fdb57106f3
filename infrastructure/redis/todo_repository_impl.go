package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"todo-backend/domain/errs"
	"todo-backend/domain/models"
	"todo-backend/domain/repositories"
)

const (
	todoItemKeyPrefix = "todo:item:"
	todoUserKeyPrefix = "todo:user:"
)

// TodoRepositoryImpl เก็บ todo เป็น JSON ต่อ 1 key
// และ set ของ todo id ต่อ user เป็น secondary index
type TodoRepositoryImpl struct {
	client *Client
}

func NewTodoRepository(client *Client) repositories.TodoRepository {
	return &TodoRepositoryImpl{client: client}
}

func itemKey(todoID string) string { return todoItemKeyPrefix + todoID }
func userKey(userID string) string { return todoUserKeyPrefix + userID }

func (r *TodoRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*models.TodoItem, error) {
	ids, err := r.client.rdb.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return nil, errs.Store("list todos", err)
	}
	if len(ids) == 0 {
		return []*models.TodoItem{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKey(id)
	}

	values, err := r.client.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errs.Store("list todos", err)
	}

	items := make([]*models.TodoItem, 0, len(values))
	for i, v := range values {
		// index อาจค้างอยู่หลัง delete ที่ไม่สมบูรณ์
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var item models.TodoItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, errs.Store("list todos", fmt.Errorf("decode %s: %w", keys[i], err))
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *TodoRepositoryImpl) GetByID(ctx context.Context, todoID string) (*models.TodoItem, error) {
	var item models.TodoItem
	err := r.client.GetJSON(ctx, itemKey(todoID), &item)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Store("get todo", err)
	}
	return &item, nil
}

// Create เขียน item และ index ใน MULTI/EXEC เดียวกัน
// WATCH item key เพื่อไม่ให้ id ซ้ำเขียนทับกัน
func (r *TodoRepositoryImpl) Create(ctx context.Context, item *models.TodoItem) error {
	key := itemKey(item.TodoID)
	data, err := json.Marshal(item)
	if err != nil {
		return errs.Store("create todo", err)
	}

	err = r.client.rdb.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return fmt.Errorf("todo %s already exists", item.TodoID)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, userKey(item.UserID), item.TodoID)
			return nil
		})
		return err
	}, key)
	return errs.Store("create todo", err)
}

func (r *TodoRepositoryImpl) Update(ctx context.Context, todoID string, patch models.TodoUpdate) error {
	if patch.IsEmpty() {
		return nil
	}
	return r.modify(ctx, "update todo", todoID, patch.Apply)
}

func (r *TodoRepositoryImpl) Delete(ctx context.Context, todoID string) error {
	item, err := r.GetByID(ctx, todoID)
	if err != nil {
		return errs.Store("delete todo", err)
	}
	if item == nil {
		return nil
	}

	_, err = r.client.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, itemKey(todoID))
		pipe.SRem(ctx, userKey(item.UserID), todoID)
		return nil
	})
	return errs.Store("delete todo", err)
}

func (r *TodoRepositoryImpl) SetAttachmentURL(ctx context.Context, todoID string, url string) error {
	return r.modify(ctx, "set attachment url", todoID, func(item *models.TodoItem) {
		item.AttachmentURL = &url
	})
}

// modify read-modify-write โดยใช้ SET XX เพื่อไม่ให้ record ที่ถูกลบไปแล้วกลับมา
func (r *TodoRepositoryImpl) modify(ctx context.Context, op, todoID string, mutate func(*models.TodoItem)) error {
	item, err := r.GetByID(ctx, todoID)
	if err != nil {
		return errs.Store(op, err)
	}
	if item == nil {
		return errs.Store(op, errs.ErrRecordMissing)
	}

	mutate(item)

	written, err := r.client.SetJSONXX(ctx, itemKey(todoID), item)
	if err != nil {
		return errs.Store(op, err)
	}
	if !written {
		return errs.Store(op, errs.ErrRecordMissing)
	}
	return nil
}
