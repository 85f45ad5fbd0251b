package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

// POST /api/notes
func (h *Handler) CreateNotes(c *gin.Context) {
	in, ok := h.bindGenerate(c)
	if !ok {
		return
	}

	bullets := services.ExtractNotes(h.resolveText(c.Request.Context(), in), services.DefaultNotePoints)
	note := models.Note{
		Title:      "Exam-focused Notes",
		ResourceID: in.ResourceID,
		Bullets:    bullets,
	}
	id, ok := h.create(c, models.CollectionNote, note)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"note_id": id, "bullets": bullets})
}

// GET /api/notes
func (h *Handler) ListNotes(c *gin.Context) {
	h.list(c, models.CollectionNote, 20)
}
