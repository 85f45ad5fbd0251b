package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vnkhanh/study-assistant-backend/models"
)

var ErrNotFound = errors.New("record not found")

// Item is one stored record with its payload left as raw JSON.
type Item struct {
	ID        string
	CreatedAt time.Time
	Data      json.RawMessage
}

// Document flattens the payload into a map and adds the stringified id.
func (it Item) Document() (map[string]interface{}, error) {
	doc := map[string]interface{}{}
	if err := json.Unmarshal(it.Data, &doc); err != nil {
		return nil, err
	}
	doc["id"] = it.ID
	doc["created_at"] = it.CreatedAt
	return doc, nil
}

// Store is a schemaless document store keyed by collection name.
type Store interface {
	Create(ctx context.Context, collection string, record any) (string, error)
	Get(ctx context.Context, collection, id string, out any) error
	List(ctx context.Context, collection string, limit int) ([]Item, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// CreateHook runs after every successful create.
type CreateHook func(collection, id string)

type GormStore struct {
	db    *gorm.DB
	hooks []CreateHook
}

func NewGormStore(db *gorm.DB, hooks ...CreateHook) *GormStore {
	return &GormStore{db: db, hooks: hooks}
}

func (s *GormStore) Create(ctx context.Context, collection string, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", collection, err)
	}

	rec := models.Record{
		ID:         uuid.New(),
		Collection: collection,
		Data:       datatypes.JSON(data),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("create %s record: %w", collection, err)
	}

	id := rec.ID.String()
	for _, h := range s.hooks {
		h(collection, id)
	}
	return id, nil
}

func (s *GormStore) Get(ctx context.Context, collection, id string, out any) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}

	var rec models.Record
	err = s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, uid).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, id, err)
	}

	if err := json.Unmarshal(rec.Data, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

// List returns up to limit records of a collection in insertion order. limit <= 0 means no limit.
func (s *GormStore) List(ctx context.Context, collection string, limit int) ([]Item, error) {
	q := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []models.Record
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	items := make([]Item, 0, len(recs))
	for _, r := range recs {
		items = append(items, Item{
			ID:        r.ID.String(),
			CreatedAt: r.CreatedAt,
			Data:      json.RawMessage(r.Data),
		})
	}
	return items, nil
}

func (s *GormStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Record{}).
		Distinct("collection").
		Order("collection ASC").
		Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("cannot get DB instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
