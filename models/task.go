package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

// StudyTask is a to-do item, usually extracted from pasted text.
type StudyTask struct {
	Title    string       `json:"title"`
	DueDate  *time.Time   `json:"due_date"`
	Course   *string      `json:"course"`
	Source   *string      `json:"source"`
	Status   TaskStatus   `json:"status"`
	Priority TaskPriority `json:"priority"`
}
