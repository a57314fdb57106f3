package redis

import (
	"context"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-backend/domain/errs"
	"todo-backend/domain/models"
)

func setupTestRepo(t *testing.T) (*TodoRepositoryImpl, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := NewTodoRepository(NewClientFromRedis(rdb)).(*TodoRepositoryImpl)
	return repo, mr
}

func newItem(id, userID, name string) *models.TodoItem {
	return &models.TodoItem{
		TodoID:    id,
		UserID:    userID,
		CreatedAt: "2024-01-01T00:00:00.000Z",
		Name:      name,
		DueDate:   "2024-01-02",
	}
}

func TestTodoRepository_CreateAndGet(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	item := newItem("t1", "u1", "Buy milk")
	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, item, got)
	assert.Nil(t, got.AttachmentURL)
}

func TestTodoRepository_GetMissingReturnsNil(t *testing.T) {
	repo, _ := setupTestRepo(t)

	got, err := repo.GetByID(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTodoRepository_CreateDuplicateFails(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("t1", "u1", "first")))
	err := repo.Create(ctx, newItem("t1", "u2", "second"))
	require.Error(t, err)
	assert.True(t, errs.IsStoreError(err))

	got, _ := repo.GetByID(ctx, "t1")
	assert.Equal(t, "first", got.Name)

	items, err := repo.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTodoRepository_CreateWritesItemAndIndex(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("t1", "u1", "Buy milk")))

	assert.True(t, mr.Exists("todo:item:t1"))
	members, err := mr.Members("todo:user:u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, members)
}

func TestTodoRepository_CreateReportsIndexFailure(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	// index key ผิด type ทำให้ SADD ใน transaction ล้ม
	require.NoError(t, mr.Set("todo:user:u1", "not-a-set"))

	err := repo.Create(ctx, newItem("t1", "u1", "Buy milk"))
	require.Error(t, err)
	assert.True(t, errs.IsStoreError(err))
}

func TestTodoRepository_ListByUser(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("a", "u1", "one")))
	require.NoError(t, repo.Create(ctx, newItem("b", "u1", "two")))
	require.NoError(t, repo.Create(ctx, newItem("c", "u2", "three")))

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)

	ids := []string{}
	for _, item := range items {
		ids = append(ids, item.TodoID)
		assert.Equal(t, "u1", item.UserID)
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestTodoRepository_ListSkipsDanglingIndexEntries(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("a", "u1", "one")))
	mr.Del(itemKey("a"))

	items, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTodoRepository_Update(t *testing.T) {
	done := true
	name := "Buy oat milk"

	tests := []struct {
		name  string
		patch models.TodoUpdate
		want  func(item *models.TodoItem)
	}{
		{"empty patch", models.TodoUpdate{}, func(item *models.TodoItem) {}},
		{"done only", models.TodoUpdate{Done: &done}, func(item *models.TodoItem) { item.Done = true }},
		{"name only", models.TodoUpdate{Name: &name}, func(item *models.TodoItem) { item.Name = name }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := setupTestRepo(t)
			ctx := context.Background()

			item := newItem("t1", "u1", "Buy milk")
			require.NoError(t, repo.Create(ctx, item))
			require.NoError(t, repo.Update(ctx, "t1", tt.patch))

			expected := *item
			tt.want(&expected)

			got, err := repo.GetByID(ctx, "t1")
			require.NoError(t, err)
			assert.Equal(t, &expected, got)
		})
	}
}

func TestTodoRepository_UpdateMissingFails(t *testing.T) {
	repo, _ := setupTestRepo(t)
	done := true

	err := repo.Update(context.Background(), "missing", models.TodoUpdate{Done: &done})
	require.Error(t, err)
	assert.True(t, errs.IsStoreError(err))
	assert.ErrorIs(t, err, errs.ErrRecordMissing)

	got, _ := repo.GetByID(context.Background(), "missing")
	assert.Nil(t, got)
}

func TestTodoRepository_SetAttachmentURL(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("t1", "u1", "photo")))
	require.NoError(t, repo.SetAttachmentURL(ctx, "t1", "https://cdn.example.com/att-123"))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got.AttachmentURL)
	assert.Equal(t, "https://cdn.example.com/att-123", *got.AttachmentURL)
	assert.Equal(t, "photo", got.Name)
}

func TestTodoRepository_Delete(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newItem("t1", "u1", "gone soon")))
	require.NoError(t, repo.Delete(ctx, "t1"))

	got, err := repo.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, mr.Exists(userKey("u1")))

	// ลบซ้ำไม่ error
	assert.NoError(t, repo.Delete(ctx, "t1"))
}

func TestTodoRepository_StoreUnavailable(t *testing.T) {
	repo, mr := setupTestRepo(t)
	mr.Close()

	_, err := repo.GetByID(context.Background(), "t1")
	require.Error(t, err)
	assert.True(t, errs.IsStoreError(err))

	_, err = repo.ListByUser(context.Background(), "u1")
	assert.True(t, errs.IsStoreError(err))
}
