package models

// Doubt is a student question with its step-by-step explanation.
type Doubt struct {
	Question         string   `json:"question"`
	Context          *string  `json:"context"`
	ExplanationSteps []string `json:"explanation_steps"`
	FinalAnswer      *string  `json:"final_answer"`
}
