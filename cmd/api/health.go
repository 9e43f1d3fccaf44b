package main

import (
	"net/http"

	"godsendjoseph.dev/package-uploader/internal/storage"
)

const serviceName = "apk-uploader"

func (app *application) healthCheckHandler(writer http.ResponseWriter, request *http.Request) {
	data := map[string]any{
		"status":            "healthy",
		"service":           serviceName,
		"supported_formats": storage.SupportedFormats(),
	}

	if err := writeJSON(writer, http.StatusOK, data); err != nil {
		app.logger.Errorw("failed to write response", "path", request.URL.Path, "error", err)
	}
}

func (app *application) rootHandler(writer http.ResponseWriter, request *http.Request) {
	data := map[string]any{
		"name":              app.config.appName,
		"version":           version,
		"status":            "running",
		"supported_formats": storage.SupportedFormats(),
		"endpoints": map[string]string{
			"upload":  "/upload",
			"health":  "/health",
			"metrics": "/metrics",
			"docs":    "/docs/index.html",
		},
	}

	if err := writeJSON(writer, http.StatusOK, data); err != nil {
		app.logger.Errorw("failed to write response", "path", request.URL.Path, "error", err)
	}
}
