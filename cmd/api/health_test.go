package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	server := newTestServer(t, nil)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "apk-uploader", body["service"])
	assert.Equal(t, []any{"APK", "AAB"}, body["supported_formats"])
}

func TestRoot(t *testing.T) {
	server := newTestServer(t, nil)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Android Package Uploader API", body["name"])
	assert.Equal(t, version, body["version"])
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, map[string]any{
		"upload":  "/upload",
		"health":  "/health",
		"metrics": "/metrics",
		"docs":    "/docs/index.html",
	}, body["endpoints"])
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t, nil)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/releases", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeBody(t, rec)["detail"])
}

func TestUploadRejectsGet(t *testing.T) {
	server := newTestServer(t, nil)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/upload", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method Not Allowed", decodeBody(t, rec)["detail"])
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t, nil)
	server.do(newUploadRequest(t, "app.apk", []byte("apk"), nil))

	rec := server.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "package_uploader_uploads_total")
}

func TestAPIDocs(t *testing.T) {
	server := newTestServer(t, nil)

	rec := server.do(httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "2.0", body["swagger"])
	assert.Contains(t, body["paths"], "/upload")
	assert.Equal(t, version, body["info"].(map[string]any)["version"])
}
