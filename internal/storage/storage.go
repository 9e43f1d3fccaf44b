package storage

import (
	"context"
)

// Client uploads Android packages to the object store.
type Client interface {
	UploadFile(ctx context.Context, content []byte, filename, customName string) (*UploadResult, error)
}

// Bucket is a single remote bucket that accepts whole-object writes.
type Bucket interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

type UploadResult struct {
	Success  bool    `json:"success"`
	URL      string  `json:"url"`
	Key      string  `json:"object_name"`
	Bucket   string  `json:"bucket"`
	FileType string  `json:"file_type"`
	SizeMB   float64 `json:"size_mb"`
}
