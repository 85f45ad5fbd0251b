package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/logger"
	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
	"github.com/vnkhanh/study-assistant-backend/store"
	"github.com/vnkhanh/study-assistant-backend/utils"
)

const defaultMaxUpload = 20 << 20

// Handler carries the collaborators every endpoint needs.
type Handler struct {
	Store store.Store
	Log   *logger.Logger
	Dates services.DateParser
	// Archiver is optional; uploads are not archived when nil.
	Archiver  utils.Archiver
	MaxUpload int64
	Now       func() time.Time
	// WSClients reports connected websocket clients for /health.
	WSClients func() int
}

func NewHandler(st store.Store, log *logger.Logger) *Handler {
	return &Handler{
		Store:     st,
		Log:       log,
		Dates:     services.FuzzyDateParser{},
		MaxUpload: defaultMaxUpload,
		Now:       time.Now,
	}
}

// GenerateInput is shared by the summary, note, flashcard and task endpoints.
type GenerateInput struct {
	ResourceID *string `json:"resource_id"`
	Text       *string `json:"text"`
	Count      *int    `json:"count"`
}

// resolveText prefers inline text and falls back to the stored resource. Lookup misses
// degrade to empty text.
func (h *Handler) resolveText(ctx context.Context, in GenerateInput) string {
	if in.Text != nil && *in.Text != "" {
		return *in.Text
	}
	if in.ResourceID == nil || *in.ResourceID == "" {
		return ""
	}

	var res models.StudentResource
	if err := h.Store.Get(ctx, models.CollectionResource, *in.ResourceID, &res); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			h.Log.Warn("resource lookup failed", "resource_id", *in.ResourceID, "error", err)
		}
		return ""
	}
	if res.ContentText == nil {
		return ""
	}
	return *res.ContentText
}

func (h *Handler) bindGenerate(c *gin.Context) (GenerateInput, bool) {
	var in GenerateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return in, false
	}
	return in, true
}

func (h *Handler) create(c *gin.Context, collection string, record any) (string, bool) {
	id, err := h.Store.Create(c.Request.Context(), collection, record)
	if err != nil {
		h.Log.Error("store create failed", "collection", collection, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot save " + collection})
		return "", false
	}
	return id, true
}

// list answers GET list endpoints with {"items": [...]}, each item carrying its id.
func (h *Handler) list(c *gin.Context, collection string, defaultLimit int) {
	limit := defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	items, err := h.Store.List(c.Request.Context(), collection, limit)
	if err != nil {
		h.Log.Error("store list failed", "collection", collection, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot list " + collection})
		return
	}

	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		doc, err := it.Document()
		if err != nil {
			h.Log.Warn("skipping undecodable record", "collection", collection, "id", it.ID, "error", err)
			continue
		}
		out = append(out, doc)
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}
