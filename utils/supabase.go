package utils

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	storage "github.com/supabase-community/storage-go"
)

// Archiver keeps a copy of uploaded bytes and returns where they live.
type Archiver interface {
	Archive(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

type SupabaseArchiver struct {
	client  *storage.Client
	baseURL string
	bucket  string
}

func NewSupabaseArchiver(supabaseURL, key, bucket string) *SupabaseArchiver {
	supabaseURL = strings.TrimRight(supabaseURL, "/")
	return &SupabaseArchiver{
		client:  storage.NewClient(supabaseURL+"/storage/v1", key, nil),
		baseURL: supabaseURL,
		bucket:  bucket,
	}
}

// Archive uploads to <bucket>/resources/<uuid>/<slug>.<ext> and returns the public URL.
func (a *SupabaseArchiver) Archive(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	objectPath := ObjectPath(uuid.NewString(), filename)
	options := storage.FileOptions{
		ContentType: &contentType,
	}
	if _, err := a.client.UploadFile(a.bucket, objectPath, bytes.NewReader(data), options); err != nil {
		return "", fmt.Errorf("supabase upload %s: %w", objectPath, err)
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", a.baseURL, a.bucket, objectPath), nil
}

// ObjectPath builds a storage key that is safe for any original filename.
func ObjectPath(id, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := slug.Make(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if name == "" {
		name = "file"
	}
	return fmt.Sprintf("resources/%s/%s%s", id, name, ext)
}
