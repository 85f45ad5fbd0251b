package services

import (
	"slices"
	"time"

	"github.com/vnkhanh/study-assistant-backend/models"
)

const (
	DefaultPlanDays   = 7
	DefaultDailyHours = 2.0
	dayLayout         = "2006-01-02"
)

var DefaultObjectives = []string{"Review notes", "Practice problems", "Revise key formulas"}

// BuildPlan spreads objectives over days in contiguous blocks of max(1, len/days),
// starting on the calendar day of now. Dates never pass the last day of the plan.
func BuildPlan(title string, objectives []string, days int, dailyHours float64, now time.Time) models.StudyPlan {
	if len(objectives) == 0 {
		objectives = slices.Clone(DefaultObjectives)
	}
	if days < 1 {
		days = 1
	}

	perDay := max(1, len(objectives)/days)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	tasks := make([]models.PlanTask, 0, len(objectives))
	dayPointer := 0
	for i, obj := range objectives {
		tasks = append(tasks, models.PlanTask{
			Title:    obj,
			DueDate:  start.AddDate(0, 0, min(dayPointer, days-1)).Format(dayLayout),
			Status:   models.StatusTodo,
			Priority: models.PriorityMedium,
		})
		if (i+1)%perDay == 0 {
			dayPointer++
		}
	}

	return models.StudyPlan{
		Title:         title,
		Objectives:    objectives,
		Tasks:         tasks,
		TimeframeDays: days,
		DailyHours:    dailyHours,
	}
}
