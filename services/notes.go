package services

import "strings"

const (
	DefaultNotePoints = 10
	bulletMaxLen      = 180
	shortLineWords    = 12
	bulletCutset      = " -•\t"
)

var noteKeywords = []string{"definition", "formula", "step", "theorem", "law", "property", "example:"}

// ExtractNotes keeps definition-like or short lines. With no qualifying line it falls back
// to the leading sentences of the text.
func ExtractNotes(text string, maxPoints int) []string {
	if maxPoints <= 0 {
		maxPoints = DefaultNotePoints
	}

	bullets := make([]string, 0, maxPoints)
	for _, line := range SplitLines(text) {
		line = strings.Trim(line, bulletCutset)
		if line == "" {
			continue
		}
		if containsAny(strings.ToLower(line), noteKeywords) || WordCount(line) <= shortLineWords {
			bullets = append(bullets, line)
		}
		if len(bullets) >= maxPoints {
			break
		}
	}

	if len(bullets) == 0 {
		sentences := SplitSentences(text)
		if len(sentences) > maxPoints {
			sentences = sentences[:maxPoints]
		}
		bullets = append(bullets, sentences...)
	}

	for i, b := range bullets {
		bullets[i] = Ellipsize(b, bulletMaxLen)
	}
	return bullets
}
