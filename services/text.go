package services

import (
	"regexp"
	"strings"
)

var (
	// Sentence ends at . ! or ? followed by whitespace.
	reSentenceEnd = regexp.MustCompile(`[.!?]\s+`)
	reNewLines    = regexp.MustCompile(`\n+`)
)

// SplitSentences segments text on punctuation boundaries. Blank pieces are dropped.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	prev := 0
	for _, m := range reSentenceEnd.FindAllStringIndex(text, -1) {
		sentences = appendNonBlank(sentences, text[prev:m[0]+1])
		prev = m[1]
	}
	return appendNonBlank(sentences, text[prev:])
}

// SplitLines splits on runs of newlines, keeping blank-only lines for the caller to skip.
func SplitLines(text string) []string {
	return reNewLines.Split(text, -1)
}

// WordCount counts whitespace separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func appendNonBlank(list []string, s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return list
	}
	return append(list, s)
}

// containsAny reports whether lower contains one of the keywords.
func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// Ellipsize caps s at limit runes, replacing the tail with "..." when it is cut.
func Ellipsize(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

// Clip cuts s to at most limit runes.
func Clip(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
