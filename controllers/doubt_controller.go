package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

type DoubtInput struct {
	Question string  `json:"question" binding:"required"`
	Context  *string `json:"context"`
}

// POST /api/doubts
func (h *Handler) AnswerDoubt(c *gin.Context) {
	var in DoubtInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctxText := ""
	if in.Context != nil {
		ctxText = *in.Context
	}
	exp := services.ExplainDoubt(in.Question, ctxText)

	final := exp.FinalAnswer
	doubt := models.Doubt{
		Question:         exp.Question,
		Context:          in.Context,
		ExplanationSteps: exp.Steps,
		FinalAnswer:      &final,
	}
	id, ok := h.create(c, models.CollectionDoubt, doubt)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doubt_id":     id,
		"steps":        exp.Steps,
		"final_answer": exp.FinalAnswer,
	})
}
