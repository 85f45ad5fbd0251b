package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

var ErrEmptyFile = errors.New("empty file")

// ExtractTextFromPDF returns the text of every readable page, joined by newlines.
// Pages that fail to extract are skipped.
func ExtractTextFromPDF(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf reader panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("cannot open pdf: %w", err)
	}

	pages := readPages(reader.NumPage(), reader.Page)
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// readPages collects the text of pages 1..n in order, skipping pages that fail.
func readPages(n int, page func(int) pdf.Page) []string {
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if content, ok := pageText(page, i); ok {
			out = append(out, content)
		}
	}
	return out
}

// pageText reads a single page; a panic while walking the page tree loses only that page.
func pageText(page func(int) pdf.Page, i int) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			text, ok = "", false
		}
	}()

	p := page(i)
	if p.V.IsNull() {
		return "", false
	}
	content, err := p.GetPlainText(nil)
	if err != nil {
		return "", false
	}
	return content, true
}
