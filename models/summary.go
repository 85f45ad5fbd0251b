package models

// Summary is a short extract of a resource with its key points.
type Summary struct {
	Title          string   `json:"title"`
	ResourceID     *string  `json:"resource_id"`
	Content        string   `json:"content"`
	KeyPoints      []string `json:"key_points"`
	ReadingTimeMin *int     `json:"reading_time_min"`
}
