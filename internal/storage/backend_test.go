package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPut struct {
	Path        string
	ContentType string
	Body        []byte
}

// newFakeS3 answers every request with status and records the PUTs it sees.
func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedPut) {
	t.Helper()

	var (
		mu   sync.Mutex
		puts []recordedPut
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if r.Method == http.MethodPut {
			mu.Lock()
			puts = append(puts, recordedPut{Path: r.URL.Path, ContentType: r.Header.Get("Content-Type"), Body: body})
			mu.Unlock()
		}

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>AccessDenied</Code><Message>Access denied by bucket policy</Message></Error>`)
			return
		}

		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, func() []recordedPut {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedPut(nil), puts...)
	}
}

func backendConfig(endpoint string) Config {
	return Config{
		Driver:          DriverS3,
		AccessKeyID:     "test-key",
		AccessKeySecret: "test-secret",
		Endpoint:        endpoint,
		BucketName:      "macaron-system",
		Region:          "ap-southeast-1",
		Prefix:          "android-packages",
		ForcePathStyle:  true,
		MaxUploadSize:   DefaultMaxUploadSize,
		PublicHost:      "download.macaron.chat",
		AABContentType:  defaultContentType,
	}
}

func TestS3BucketPutObject(t *testing.T) {
	server, puts := newFakeS3(t, http.StatusOK)

	bucket, err := NewS3Bucket(context.Background(), backendConfig(server.URL))
	require.NoError(t, err)

	err = bucket.PutObject(context.Background(), "android-packages/app.apk", []byte("apk-bytes"), apkContentType)
	require.NoError(t, err)

	recorded := puts()
	require.Len(t, recorded, 1)
	assert.Equal(t, "/macaron-system/android-packages/app.apk", recorded[0].Path)
	assert.Equal(t, apkContentType, recorded[0].ContentType)
	assert.Equal(t, []byte("apk-bytes"), recorded[0].Body)
}

func TestS3BucketReportsStatusWithoutRetrying(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server, puts := newFakeS3(t, status)

			bucket, err := NewS3Bucket(context.Background(), backendConfig(server.URL))
			require.NoError(t, err)

			err = bucket.PutObject(context.Background(), "android-packages/app.apk", []byte("apk"), apkContentType)
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Len(t, puts(), 1)
		})
	}
}

func TestMinioBucketPutObject(t *testing.T) {
	server, puts := newFakeS3(t, http.StatusOK)

	bucket, err := NewMinioBucket(backendConfig(server.URL))
	require.NoError(t, err)

	err = bucket.PutObject(context.Background(), "android-packages/app.aab", []byte("aab-bytes"), defaultContentType)
	require.NoError(t, err)

	recorded := puts()
	require.Len(t, recorded, 1)
	assert.Equal(t, "/macaron-system/android-packages/app.aab", recorded[0].Path)
	assert.Equal(t, defaultContentType, recorded[0].ContentType)
	// Over plain HTTP minio-go signs the payload in chunks, so the raw body is not compared.
	assert.NotEmpty(t, recorded[0].Body)
}

func TestMinioBucketReportsStatusWithoutRetrying(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server, puts := newFakeS3(t, status)

			bucket, err := NewMinioBucket(backendConfig(server.URL))
			require.NoError(t, err)

			err = bucket.PutObject(context.Background(), "android-packages/app.apk", []byte("apk"), apkContentType)
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, status, statusErr.StatusCode)
			assert.Contains(t, err.Error(), fmt.Sprintf("upload failed with status: %d", status))
			assert.Len(t, puts(), 1)
		})
	}
}
