package storage

import (
	"context"
	"fmt"
	"sync"
)

// Connector opens the bucket handle. It runs at most once per successful Uploader.
type Connector func(ctx context.Context, cfg Config) (Bucket, error)

func ConnectorFor(driver string) (Connector, error) {
	switch driver {
	case DriverS3:
		return ConnectS3, nil
	case DriverMinio:
		return ConnectMinio, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

type Uploader struct {
	cfg     Config
	connect Connector

	mu     sync.Mutex
	bucket Bucket
}

func NewUploader(cfg Config, connect Connector) *Uploader {
	return &Uploader{
		cfg:     cfg,
		connect: connect,
	}
}

func (u *Uploader) Config() Config {
	return u.cfg
}

// Bucket returns the shared bucket handle, connecting on first use.
// A failed connect is not remembered, so the next call tries again.
func (u *Uploader) Bucket(ctx context.Context) (Bucket, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.bucket != nil {
		return u.bucket, nil
	}

	bucket, err := u.connect(ctx, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to bucket %q: %w", u.cfg.BucketName, err)
	}
	u.bucket = bucket

	return bucket, nil
}

// UploadFile stores content under the key derived from filename and customName.
// The store is called exactly once; failures are never retried.
func (u *Uploader) UploadFile(ctx context.Context, content []byte, filename, customName string) (*UploadResult, error) {
	ext, err := ParseExtension(filename)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(u.cfg.Prefix, filename, customName, ext)

	bucket, err := u.Bucket(ctx)
	if err != nil {
		return nil, transportError(err)
	}

	if err := bucket.PutObject(ctx, key, content, u.cfg.ContentType(ext)); err != nil {
		return nil, transportError(err)
	}

	return &UploadResult{
		Success:  true,
		URL:      u.cfg.PublicURL(key),
		Key:      key,
		Bucket:   u.cfg.BucketName,
		FileType: ext.FileType(),
		SizeMB:   SizeMB(int64(len(content))),
	}, nil
}
