package services

import (
	"strings"
	"time"

	"github.com/vnkhanh/study-assistant-backend/models"
)

const (
	taskTitleMaxLen = 120
	staleAfter      = 24 * time.Hour
)

var (
	taskVerbs    = []string{"submit", "finish", "complete", "read", "solve", "revise", "review", "write", "prepare"}
	examKeywords = []string{"exam", "midterm", "final"}
)

// TaskCandidate is an extracted task before it is stored.
type TaskCandidate struct {
	Title    string              `json:"title"`
	DueDate  *time.Time          `json:"due_date"`
	Status   models.TaskStatus   `json:"status"`
	Priority models.TaskPriority `json:"priority"`
}

// ExtractTasks emits one candidate per line mentioning a study verb, in line order.
func ExtractTasks(text string, now time.Time, parser DateParser) []TaskCandidate {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })

	var tasks []TaskCandidate
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if !containsAny(lower, taskVerbs) {
			continue
		}

		priority := models.PriorityMedium
		if containsAny(lower, examKeywords) {
			priority = models.PriorityHigh
		}
		tasks = append(tasks, TaskCandidate{
			Title:    Clip(line, taskTitleMaxLen),
			DueDate:  dueDate(line, now, parser),
			Status:   models.StatusTodo,
			Priority: priority,
		})
	}
	return tasks
}

// dueDate drops unparseable dates and dates more than a day in the past.
func dueDate(line string, now time.Time, parser DateParser) *time.Time {
	if parser == nil {
		return nil
	}
	due, err := parser.Parse(line, now)
	if err != nil || due.Before(now.Add(-staleAfter)) {
		return nil
	}
	return &due
}
