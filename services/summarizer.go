package services

import (
	"slices"
	"strings"
)

const (
	DefaultSummarySentences = 5
	keyPointMaxLen          = 200
	wordsPerMinute          = 180
)

var summaryKeywords = []string{"important", "key", "therefore", "defines", "theorem", "proof", "exam", "result", "conclusion"}

type SummaryResult struct {
	Content        string   `json:"content"`
	KeyPoints      []string `json:"key_points"`
	ReadingTimeMin int      `json:"reading_time_min"`
}

// Summarize picks keyword sentences first, then tops up with the remaining sentences in order.
func Summarize(text string, maxSentences int) SummaryResult {
	if maxSentences <= 0 {
		maxSentences = DefaultSummarySentences
	}
	sentences := SplitSentences(text)

	picked := make([]string, 0, maxSentences)
	for _, s := range sentences {
		if len(picked) >= maxSentences {
			break
		}
		if containsAny(strings.ToLower(s), summaryKeywords) {
			picked = append(picked, s)
		}
	}

	if len(picked) < maxSentences {
		for _, s := range sentences {
			if len(picked) >= maxSentences {
				break
			}
			if !slices.Contains(picked, s) {
				picked = append(picked, s)
			}
		}
	}

	points := make([]string, len(picked))
	for i, p := range picked {
		points[i] = Ellipsize(p, keyPointMaxLen)
	}

	return SummaryResult{
		Content:        strings.Join(picked, " "),
		KeyPoints:      points,
		ReadingTimeMin: ReadingTime(text),
	}
}

// ReadingTime is max(1, words/180) whole minutes.
func ReadingTime(text string) int {
	minutes := WordCount(text) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
