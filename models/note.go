package models

// Note holds exam-focused bullets pulled from a resource.
type Note struct {
	Title      string   `json:"title"`
	ResourceID *string  `json:"resource_id"`
	Bullets    []string `json:"bullets"`
}
