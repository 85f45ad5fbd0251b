package models

type ResourceType string

const (
	ResourcePDF     ResourceType = "pdf"
	ResourceAudio   ResourceType = "audio"
	ResourceImage   ResourceType = "image"
	ResourceText    ResourceType = "text"
	ResourceUnknown ResourceType = "unknown"
	ResourceBinary  ResourceType = "binary"
)

// StudentResource is an uploaded or pasted piece of study material.
type StudentResource struct {
	Title       string                 `json:"title"`
	Type        ResourceType           `json:"type"`
	SourceName  *string                `json:"source_name"`
	ContentText *string                `json:"content_text"`
	Metadata    map[string]interface{} `json:"metadata"`
}
