package services

import (
	"path/filepath"
	"strings"

	"github.com/vnkhanh/study-assistant-backend/models"
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// Extraction is the outcome of turning an upload into text.
type Extraction struct {
	Type models.ResourceType
	Text string
	// Err is set when extraction was attempted and failed. Text is then empty.
	Err error
}

// DetectResourceType classifies an upload by its file extension.
func DetectResourceType(filename string) models.ResourceType {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".pdf":
		return models.ResourcePDF
	case imageExts[ext]:
		return models.ResourceImage
	default:
		return models.ResourceBinary
	}
}

// NormalizeUpload extracts plain text from uploaded bytes. Images yield no text since OCR
// is not available, other binaries are stored as-is.
func NormalizeUpload(filename string, data []byte) Extraction {
	out := Extraction{Type: DetectResourceType(filename)}
	if out.Type != models.ResourcePDF {
		return out
	}
	out.Text, out.Err = ExtractTextFromPDF(data)
	if out.Err != nil {
		out.Text = ""
	}
	return out
}
