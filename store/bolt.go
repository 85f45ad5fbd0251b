package store

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// indexBucket maps "<collection>/<id>" to the record's sequence key.
var indexBucket = []byte("__index")

type boltEnvelope struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Data      json.RawMessage `json:"data"`
}

// BoltStore keeps one bucket per collection, keyed by a big-endian sequence so
// cursor order is insertion order.
type BoltStore struct {
	db    *bolt.DB
	hooks []CreateHook
}

func OpenBoltStore(path string, hooks ...CreateHook) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for BoltDB: %w", err)
		}
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(indexBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index bucket: %w", err)
	}
	return &BoltStore{db: db, hooks: hooks}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func seqKey(n uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, n)
	return k
}

func indexKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

func (s *BoltStore) Create(ctx context.Context, collection string, record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", collection, err)
	}
	if bytes.Equal([]byte(collection), indexBucket) {
		return "", fmt.Errorf("collection name %q is reserved", collection)
	}

	env := boltEnvelope{ID: uuid.New().String(), CreatedAt: time.Now().UTC(), Data: data}
	raw, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode %s record: %w", collection, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := seqKey(seq)
		if err := b.Put(key, raw); err != nil {
			return err
		}
		return tx.Bucket(indexBucket).Put(indexKey(collection, env.ID), key)
	})
	if err != nil {
		return "", fmt.Errorf("create %s record: %w", collection, err)
	}

	for _, h := range s.hooks {
		h(collection, env.ID)
	}
	return env.ID, nil
}

func (s *BoltStore) Get(ctx context.Context, collection, id string, out any) error {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(indexBucket).Get(indexKey(collection, id))
		b := tx.Bucket([]byte(collection))
		if key == nil || b == nil {
			return ErrNotFound
		}
		v := b.Get(key)
		if v == nil {
			return ErrNotFound
		}
		// values are only valid inside the transaction
		raw = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}

	var env boltEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *BoltStore) List(ctx context.Context, collection string, limit int) ([]Item, error) {
	items := []Item{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if limit > 0 && len(items) >= limit {
				break
			}
			var env boltEnvelope
			if err := json.Unmarshal(v, &env); err != nil {
				return fmt.Errorf("decode %s record: %w", collection, err)
			}
			items = append(items, Item{
				ID:        env.ID,
				CreatedAt: env.CreatedAt,
				Data:      append(json.RawMessage(nil), env.Data...),
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return items, nil
}

func (s *BoltStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			if !bytes.Equal(name, indexBucket) {
				names = append(names, string(name))
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func (s *BoltStore) Ping(ctx context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error { return nil })
}

var (
	_ Store = (*BoltStore)(nil)
	_ Store = (*GormStore)(nil)
)
