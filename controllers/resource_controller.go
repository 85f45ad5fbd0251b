package controllers

import (
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/study-assistant-backend/models"
	"github.com/vnkhanh/study-assistant-backend/services"
)

type TextResourceInput struct {
	Title string  `json:"title" binding:"required"`
	Text  *string `json:"text" binding:"required"`
}

// POST /api/resources/upload
func (h *Handler) UploadResource(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	if h.MaxUpload > 0 && file.Size > h.MaxUpload {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("file exceeds %d MB", h.MaxUpload>>20)})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}

	extraction := services.NormalizeUpload(file.Filename, data)
	if extraction.Err != nil {
		h.Log.Warn("text extraction failed, storing empty text",
			"filename", file.Filename, "type", extraction.Type, "error", extraction.Err)
	}

	metadata := map[string]interface{}{"size": len(data)}
	if h.Archiver != nil {
		url, err := h.Archiver.Archive(c.Request.Context(), file.Filename, file.Header.Get("Content-Type"), data)
		if err != nil {
			h.Log.Warn("upload archive failed", "filename", file.Filename, "error", err)
		} else {
			metadata["file_url"] = url
		}
	}

	title := c.PostForm("title")
	if title == "" {
		title = file.Filename
	}
	filename := file.Filename
	text := extraction.Text
	res := models.StudentResource{
		Title:       title,
		Type:        extraction.Type,
		SourceName:  &filename,
		ContentText: &text,
		Metadata:    metadata,
	}
	id, ok := h.create(c, models.CollectionResource, res)
	if !ok {
		return
	}

	h.Log.Info("resource uploaded", "resource_id", id, "type", extraction.Type, "bytes", len(data))
	c.JSON(http.StatusOK, gin.H{
		"resource_id":   id,
		"detected_type": extraction.Type,
		"chars":         utf8.RuneCountInString(text),
	})
}

// POST /api/resources/text
func (h *Handler) CreateTextResource(c *gin.Context) {
	var in TextResourceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := models.StudentResource{
		Title:       in.Title,
		Type:        models.ResourceText,
		ContentText: in.Text,
		Metadata:    map[string]interface{}{},
	}
	id, ok := h.create(c, models.CollectionResource, res)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resource_id": id,
		"chars":       utf8.RuneCountInString(*in.Text),
	})
}
