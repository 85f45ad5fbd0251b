package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/study-assistant-backend/logger"
	"github.com/vnkhanh/study-assistant-backend/store"
)

// memStore keeps records in memory, in insertion order.
type memStore struct {
	mu      sync.Mutex
	seq     int
	records map[string][]store.Item
	failOn  string
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]store.Item{}}
}

func (m *memStore) Create(_ context.Context, collection string, record any) (string, error) {
	if collection == m.failOn {
		return "", errors.New("boom")
	}
	data, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	id := fmt.Sprintf("id-%d", m.seq)
	m.records[collection] = append(m.records[collection], store.Item{ID: id, CreatedAt: time.Now(), Data: data})
	return id, nil
}

func (m *memStore) Get(_ context.Context, collection, id string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.records[collection] {
		if it.ID == id {
			return json.Unmarshal(it.Data, out)
		}
	}
	return store.ErrNotFound
}

func (m *memStore) List(_ context.Context, collection string, limit int) ([]store.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := m.records[collection]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return append([]store.Item(nil), items...), nil
}

func (m *memStore) Collections(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for name := range m.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memStore) Ping(context.Context) error { return nil }

// decode returns the stored payloads of a collection.
func (m *memStore) decode(t *testing.T, collection string) []map[string]interface{} {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []map[string]interface{}
	for _, it := range m.records[collection] {
		doc := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(it.Data, &doc))
		out = append(out, doc)
	}
	return out
}

var fixedNow = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) (*gin.Engine, *memStore, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := newMemStore()
	h := NewHandler(st, logger.Nop())
	h.Now = func() time.Time { return fixedNow }

	r := gin.New()
	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/health", h.HealthCheck)
	r.POST("/api/resources/upload", h.UploadResource)
	r.POST("/api/resources/text", h.CreateTextResource)
	r.POST("/api/summarize", h.Summarize)
	r.POST("/api/notes", h.CreateNotes)
	r.POST("/api/flashcards", h.GenerateFlashcards)
	r.POST("/api/tasks/extract", h.ExtractTasks)
	r.POST("/api/plan", h.BuildPlan)
	r.POST("/api/doubts", h.AnswerDoubt)
	r.GET("/api/flashcards", h.ListFlashcards)
	r.GET("/api/tasks", h.ListTasks)
	r.GET("/api/summaries", h.ListSummaries)
	r.GET("/api/notes", h.ListNotes)
	return r, st, h
}

func postJSON(t *testing.T, r http.Handler, path string, body any) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, decodeBody(t, rec)
}

func get(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, decodeBody(t, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
