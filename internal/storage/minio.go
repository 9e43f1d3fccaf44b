package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioBucket is the minio-go backend, used for local MinIO and other S3-compatible stores.
type MinioBucket struct {
	client     *minio.Client
	bucketName string
}

func NewMinioBucket(cfg Config) (*MinioBucket, error) {
	endpoint, err := url.Parse(cfg.EndpointURL())
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", cfg.Endpoint, err)
	}

	lookup := minio.BucketLookupAuto
	if cfg.ForcePathStyle {
		lookup = minio.BucketLookupPath
	}

	// minio-go retries 5xx and throttling statuses by default; one attempt per put.
	client, err := minio.New(endpoint.Host, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKeyID, cfg.AccessKeySecret, ""),
		Secure:       endpoint.Scheme == "https",
		Region:       cfg.Region,
		BucketLookup: lookup,
		MaxRetries:   1,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &MinioBucket{
		client:     client,
		bucketName: cfg.BucketName,
	}, nil
}

func ConnectMinio(_ context.Context, cfg Config) (Bucket, error) {
	bucket, err := NewMinioBucket(cfg)
	if err != nil {
		return nil, err
	}
	return bucket, nil
}

func (b *MinioBucket) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, b.bucketName, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.StatusCode != 0 {
			return &StatusError{StatusCode: resp.StatusCode, Err: err}
		}
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}
