package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

const taskSourceExtracted = "extracted"

type extractedTask struct {
	services.TaskCandidate
	ID string `json:"id"`
}

// POST /api/tasks/extract
func (h *Handler) ExtractTasks(c *gin.Context) {
	in, ok := h.bindGenerate(c)
	if !ok {
		return
	}

	text := ""
	if in.Text != nil {
		text = *in.Text
	}
	candidates := services.ExtractTasks(text, h.Now(), h.Dates)

	created := make([]extractedTask, 0, len(candidates))
	for _, t := range candidates {
		source := taskSourceExtracted
		task := models.StudyTask{
			Title:    t.Title,
			DueDate:  t.DueDate,
			Source:   &source,
			Status:   t.Status,
			Priority: t.Priority,
		}
		id, ok := h.create(c, models.CollectionTask, task)
		if !ok {
			return
		}
		created = append(created, extractedTask{TaskCandidate: t, ID: id})
	}

	c.JSON(http.StatusOK, gin.H{"tasks": created})
}

// GET /api/tasks
func (h *Handler) ListTasks(c *gin.Context) {
	h.list(c, models.CollectionTask, 50)
}
