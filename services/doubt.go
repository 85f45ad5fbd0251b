package services

import "strings"

const (
	DoubtDisclaimer = "This is a heuristic explanation. For precise solutions, consult course materials."
	contextMaxLen   = 200
)

type DoubtExplanation struct {
	Question    string   `json:"question"`
	Steps       []string `json:"steps"`
	FinalAnswer string   `json:"final_answer"`
}

// ExplainDoubt returns the fixed explanation outline. The context step is only added when
// context is non-empty.
func ExplainDoubt(question, context string) DoubtExplanation {
	q := strings.TrimSpace(question)

	steps := make([]string, 0, 5)
	if context != "" {
		steps = append(steps, "Understand the context: "+Clip(context, contextMaxLen))
	}
	steps = append(steps,
		"Restate the question: "+q,
		"Identify knowns and unknowns",
		"Break into sub-problems and solve step-by-step",
		"Verify the result with a quick check or example",
	)

	return DoubtExplanation{
		Question:    q,
		Steps:       steps,
		FinalAnswer: DoubtDisclaimer,
	}
}
