package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

// POST /api/flashcards
func (h *Handler) GenerateFlashcards(c *gin.Context) {
	in, ok := h.bindGenerate(c)
	if !ok {
		return
	}

	count := services.DefaultFlashcardCount
	if in.Count != nil && *in.Count > 0 {
		count = *in.Count
	}
	cards := services.GenerateFlashcards(h.resolveText(c.Request.Context(), in), count)

	ids := make([]string, 0, len(cards))
	for _, card := range cards {
		fc := models.Flashcard{
			ResourceID: in.ResourceID,
			Question:   card.Question,
			Answer:     card.Answer,
		}
		id, ok := h.create(c, models.CollectionFlashcard, fc)
		if !ok {
			return
		}
		ids = append(ids, id)
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(cards),
		"cards": cards,
		"ids":   ids,
	})
}

// GET /api/flashcards
func (h *Handler) ListFlashcards(c *gin.Context) {
	h.list(c, models.CollectionFlashcard, 20)
}
