package models

// PlanTask is the task-shaped entry embedded in a StudyPlan. DueDate is a calendar day (2006-01-02).
type PlanTask struct {
	Title    string       `json:"title"`
	DueDate  string       `json:"due_date"`
	Status   TaskStatus   `json:"status"`
	Priority TaskPriority `json:"priority"`
}

// StudyPlan spreads objectives over a number of days.
type StudyPlan struct {
	Title         string     `json:"title"`
	Objectives    []string   `json:"objectives"`
	Tasks         []PlanTask `json:"tasks"`
	TimeframeDays int        `json:"timeframe_days"`
	DailyHours    float64    `json:"daily_hours"`
}
