package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

// POST /api/summarize
func (h *Handler) Summarize(c *gin.Context) {
	in, ok := h.bindGenerate(c)
	if !ok {
		return
	}

	text := h.resolveText(c.Request.Context(), in)
	result := services.Summarize(text, services.DefaultSummarySentences)

	readingTime := result.ReadingTimeMin
	summary := models.Summary{
		Title:          "Summary",
		ResourceID:     in.ResourceID,
		Content:        result.Content,
		KeyPoints:      result.KeyPoints,
		ReadingTimeMin: &readingTime,
	}
	id, ok := h.create(c, models.CollectionSummary, summary)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary_id":       id,
		"content":          result.Content,
		"key_points":       result.KeyPoints,
		"reading_time_min": result.ReadingTimeMin,
	})
}

// GET /api/summaries
func (h *Handler) ListSummaries(c *gin.Context) {
	h.list(c, models.CollectionSummary, 20)
}
