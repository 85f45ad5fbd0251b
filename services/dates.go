package services

import (
	"errors"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

var ErrNoDate = errors.New("no date found")

// DateParser finds a date inside free text. Missing components are taken from anchor.
type DateParser interface {
	Parse(text string, anchor time.Time) (time.Time, error)
}

// FuzzyDateParser searches the whole line for English natural-language dates and keeps the
// first hit. Incomplete dates such as a bare weekday resolve forward from anchor.
type FuzzyDateParser struct{}

func (FuzzyDateParser) Parse(text string, anchor time.Time) (time.Time, error) {
	cfg := &dps.Configuration{
		CurrentTime:         anchor,
		Languages:           []string{"en"},
		PreferredDateSource: dps.Future,
	}
	_, found, err := dps.Search(cfg, text)
	if err != nil {
		return time.Time{}, err
	}
	for _, r := range found {
		if !r.Date.Time.IsZero() {
			return r.Date.Time, nil
		}
	}
	return time.Time{}, ErrNoDate
}
