package store

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vnkhanh/study-assistant-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Record{}))
	return db
}

func TestGormStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(newTestDB(t))

	text := "Newton's laws"
	id, err := s.Create(ctx, models.CollectionResource, models.StudentResource{
		Title:       "Physics",
		Type:        models.ResourceText,
		ContentText: &text,
		Metadata:    map[string]interface{}{},
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	var got models.StudentResource
	require.NoError(t, s.Get(ctx, models.CollectionResource, id, &got))
	assert.Equal(t, "Physics", got.Title)
	assert.Equal(t, models.ResourceText, got.Type)
	require.NotNil(t, got.ContentText)
	assert.Equal(t, text, *got.ContentText)
}

func TestGormStore_GetNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(newTestDB(t))

	id, err := s.Create(ctx, models.CollectionNote, models.Note{Title: "n"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		collection string
		id         string
	}{
		{"malformed id", models.CollectionNote, "not-a-uuid"},
		{"unknown id", models.CollectionNote, uuid.NewString()},
		{"wrong collection", models.CollectionSummary, id},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out models.Note
			err := s.Get(ctx, tt.collection, tt.id, &out)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestGormStore_ListOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(newTestDB(t))

	var ids []string
	for _, q := range []string{"q1", "q2", "q3"} {
		id, err := s.Create(ctx, models.CollectionFlashcard, models.Flashcard{Question: q, Answer: "a"})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := s.Create(ctx, models.CollectionNote, models.Note{Title: "other"})
	require.NoError(t, err)

	items, err := s.List(ctx, models.CollectionFlashcard, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, ids[i], it.ID)
	}

	items, err = s.List(ctx, models.CollectionFlashcard, 2)
	require.NoError(t, err)
	require.Len(t, items, 2)

	doc, err := items[1].Document()
	require.NoError(t, err)
	assert.Equal(t, ids[1], doc["id"])
	assert.Equal(t, "q2", doc["question"])
}

func TestGormStore_Collections(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(newTestDB(t))

	names, err := s.Collections(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	for _, c := range []string{models.CollectionTask, models.CollectionDoubt, models.CollectionTask} {
		_, err := s.Create(ctx, c, map[string]string{"k": "v"})
		require.NoError(t, err)
	}
	names, err = s.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{models.CollectionDoubt, models.CollectionTask}, names)
}

func TestGormStore_CreateHooks(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	var seen []string
	s := NewGormStore(newTestDB(t), func(collection, id string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, collection+"/"+id)
	})

	id, err := s.Create(ctx, models.CollectionDoubt, models.Doubt{Question: "why"})
	require.NoError(t, err)
	assert.Equal(t, []string{models.CollectionDoubt + "/" + id}, seen)
}

func TestGormStore_CreateRejectsUnencodable(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	_, err := s.Create(context.Background(), models.CollectionNote, map[string]interface{}{"bad": make(chan int)})
	assert.Error(t, err)
}

func TestGormStore_Ping(t *testing.T) {
	s := NewGormStore(newTestDB(t))
	assert.NoError(t, s.Ping(context.Background()))
}
