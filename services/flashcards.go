package services

import (
	"fmt"
	"slices"
	"strings"
)

const (
	DefaultFlashcardCount = 8
	questionMaxLen        = 180
	answerMaxLen          = 300
	minCardWords          = 6
	fillerAnswer          = "Review your notes for this topic."
)

type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateFlashcards turns "X is Y" / "X are Y" sentences into cards and pads with filler
// cards so exactly n cards come back.
func GenerateFlashcards(text string, n int) []Card {
	if n <= 0 {
		n = DefaultFlashcardCount
	}

	cards := make([]Card, 0, n)
	for _, s := range SplitSentences(text) {
		if len(cards) >= n {
			break
		}
		if card, ok := cardFromSentence(s); ok {
			cards = append(cards, card)
		}
	}

	for i := 1; len(cards) < n; i++ {
		cards = append(cards, Card{
			Question: fmt.Sprintf("Key point %d?", i),
			Answer:   fillerAnswer,
		})
	}
	return cards
}

func cardFromSentence(sentence string) (Card, bool) {
	words := strings.Fields(sentence)
	if len(words) < minCardWords {
		return Card{}, false
	}

	idx := slices.Index(words, "is")
	if idx < 0 {
		idx = slices.Index(words, "are")
	}
	if idx < 0 {
		return Card{}, false
	}

	subject := strings.Trim(strings.Join(words[:idx], " "), ", .")
	answer := strings.TrimSpace(strings.Join(words[idx+1:], " "))
	if subject == "" || answer == "" {
		return Card{}, false
	}
	return Card{
		Question: Clip("What is "+subject+"?", questionMaxLen),
		Answer:   Clip(answer, answerMaxLen),
	}, true
}
