package main

import (
	"net/http"

	"godsendjoseph.dev/package-uploader/internal/metrics"
	"godsendjoseph.dev/package-uploader/internal/storage"
)

func (app *application) badRequestResponse(writer http.ResponseWriter, request *http.Request, err error) {
	app.logger.Warnw("bad request error", "method", request.Method, "path", request.URL.Path, "error", err.Error())
	_ = writeJSONError(writer, http.StatusBadRequest, err.Error())
}

func (app *application) payloadTooLargeResponse(writer http.ResponseWriter, request *http.Request, err error) {
	app.logger.Warnw("payload too large error", "method", request.Method, "path", request.URL.Path, "error", err.Error())
	_ = writeJSONError(writer, http.StatusRequestEntityTooLarge, err.Error())
}

// uploadFailedResponse answers a failed put; the detail keeps the store's error text.
func (app *application) uploadFailedResponse(writer http.ResponseWriter, request *http.Request, err error) {
	app.logger.Errorw("upload failed", "method", request.Method, "path", request.URL.Path, "error", err.Error())
	if notifyErr := app.slackNotifier.NotifyServerError(request.Context(), err, request); notifyErr != nil {
		app.logger.Warnw("slack notification failed", "error", notifyErr)
	}
	_ = writeJSONError(writer, http.StatusInternalServerError, "Failed to upload package: "+err.Error())
}

func (app *application) notFoundResponse(writer http.ResponseWriter, request *http.Request) {
	app.logger.Infow("not found error", "method", request.Method, "path", request.URL.Path)
	_ = writeJSONError(writer, http.StatusNotFound, "Not Found")
}

func (app *application) methodNotAllowedResponse(writer http.ResponseWriter, request *http.Request) {
	app.logger.Infow("method not allowed error", "method", request.Method, "path", request.URL.Path)
	_ = writeJSONError(writer, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// uploadErrorResponse maps a storage error kind to its HTTP status.
func (app *application) uploadErrorResponse(writer http.ResponseWriter, request *http.Request, err error) {
	kind := storage.KindOf(err)

	switch kind {
	case storage.KindInvalidFileType, storage.KindEmptyFile, storage.KindUnsupportedFileType:
		metrics.ObserveRejection(kind.String())
		app.badRequestResponse(writer, request, err)
	case storage.KindFileTooLarge:
		metrics.ObserveRejection(kind.String())
		app.payloadTooLargeResponse(writer, request, err)
	default:
		app.uploadFailedResponse(writer, request, err)
	}
}
