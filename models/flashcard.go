package models

// Flashcard is one question/answer card.
type Flashcard struct {
	ResourceID *string `json:"resource_id"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Topic      *string `json:"topic"`
}
