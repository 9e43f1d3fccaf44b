// Package storagetest provides an in-memory storage.Bucket for tests.
package storagetest

import (
	"context"
	"sync"
	"sync/atomic"

	"godsendjoseph.dev/package-uploader/internal/storage"
)

type Object struct {
	Body        []byte
	ContentType string
}

// MemoryBucket records every put. Set Err to make puts fail.
type MemoryBucket struct {
	mu      sync.Mutex
	objects map[string]Object
	puts    int
	Err     error
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{
		objects: make(map[string]Object),
	}
}

func (m *MemoryBucket) PutObject(_ context.Context, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.puts++
	if m.Err != nil {
		return m.Err
	}

	stored := make([]byte, len(body))
	copy(stored, body)
	m.objects[key] = Object{Body: stored, ContentType: contentType}

	return nil
}

func (m *MemoryBucket) Object(key string) (Object, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[key]
	return obj, ok
}

// Puts is the number of PutObject calls, failed ones included.
func (m *MemoryBucket) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.puts
}

// Connector returns a storage.Connector handing out bucket and counting connects.
func Connector(bucket storage.Bucket, connects *atomic.Int32) storage.Connector {
	return func(context.Context, storage.Config) (storage.Bucket, error) {
		if connects != nil {
			connects.Add(1)
		}
		return bucket, nil
	}
}

// Config is a valid configuration pointing at no real store.
func Config() storage.Config {
	return storage.Config{
		Driver:          storage.DriverS3,
		AccessKeyID:     "test-key",
		AccessKeySecret: "test-secret",
		Endpoint:        "https://oss-ap-southeast-1.aliyuncs.com",
		BucketName:      "macaron-system",
		Region:          "ap-southeast-1",
		Prefix:          "android-packages",
		MaxUploadSize:   storage.DefaultMaxUploadSize,
		PublicHost:      "download.macaron.chat",
		AABContentType:  "application/octet-stream",
	}
}
