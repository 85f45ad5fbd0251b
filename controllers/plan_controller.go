package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

type PlanInput struct {
	Title      string   `json:"title" binding:"required"`
	Objectives []string `json:"objectives"`
	Days       *int     `json:"days"`
	DailyHours *float64 `json:"daily_hours"`
}

// POST /api/plan
func (h *Handler) BuildPlan(c *gin.Context) {
	var in PlanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days := services.DefaultPlanDays
	if in.Days != nil {
		days = *in.Days
	}
	hours := services.DefaultDailyHours
	if in.DailyHours != nil {
		hours = *in.DailyHours
	}

	plan := services.BuildPlan(in.Title, in.Objectives, days, hours, h.Now())
	id, ok := h.create(c, models.CollectionPlan, plan)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id": id,
		"tasks":   plan.Tasks,
		"days":    plan.TimeframeDays,
	})
}
