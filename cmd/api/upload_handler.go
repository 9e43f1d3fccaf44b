package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"godsendjoseph.dev/package-uploader/internal/metrics"
	"godsendjoseph.dev/package-uploader/internal/storage"
)

// Room for multipart framing and text fields on top of the largest accepted file.
const multipartAllowance = 10 << 20

type uploadPackagePayload struct {
	CustomName string `form:"custom_name" validate:"max=255"`
}

func (app *application) uploadPackageHandler(writer http.ResponseWriter, request *http.Request) {
	uploadID := uuid.NewString()
	maxUploadSize := app.config.storage.MaxUploadSize

	var payload uploadPackagePayload

	files, err := readFormData(writer, request, maxUploadSize+multipartAllowance, &payload)
	if request.MultipartForm != nil {
		defer request.MultipartForm.RemoveAll()
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			app.uploadErrorResponse(writer, request, storage.NewError(storage.KindFileTooLarge,
				fmt.Sprintf("File too large. Maximum size: %.2fMB", storage.MiB(maxUploadSize))))
			return
		}
		app.badRequestResponse(writer, request, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(writer, request, err)
		return
	}

	headers := files["file"]
	if len(headers) == 0 {
		app.badRequestResponse(writer, request, errors.New("file field is required"))
		return
	}

	result, err := app.uploadPackage(request.Context(), uploadID, headers[0], payload.CustomName)
	if err != nil {
		app.uploadErrorResponse(writer, request, err)
		return
	}

	app.logger.Infow("upload successful", "upload_id", uploadID, "url", result.URL)
	if err := app.slackNotifier.NotifyUploadSucceeded(request.Context(), uploadID, result); err != nil {
		app.logger.Warnw("slack notification failed", "upload_id", uploadID, "error", err)
	}

	message := fmt.Sprintf("%s file uploaded successfully", result.FileType)
	if err := writeEnvelope(writer, http.StatusOK, message, result); err != nil {
		app.logger.Errorw("failed to write response", "upload_id", uploadID, "error", err)
	}
}

// uploadPackage validates the multipart file and hands its bytes to the storage client.
// The file is closed on every return path.
func (app *application) uploadPackage(ctx context.Context, uploadID string, header *multipart.FileHeader, customName string) (*storage.UploadResult, error) {
	if !storage.HasSupportedSuffix(header.Filename) {
		return nil, storage.NewError(storage.KindInvalidFileType,
			fmt.Sprintf("Invalid file type. Only APK and AAB files are allowed. Got: %s", header.Filename))
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()

	app.logger.Infow("receiving file", "upload_id", uploadID, "filename", header.Filename)

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file: %w", err)
	}

	size := int64(len(content))
	if err := storage.CheckSize(size, app.config.storage.MaxUploadSize); err != nil {
		return nil, err
	}

	app.logger.Infow("uploading package",
		"upload_id", uploadID,
		"filename", header.Filename,
		"custom_name", customName,
		"size_mb", fmt.Sprintf("%.2f", storage.MiB(size)),
	)

	start := time.Now()
	result, err := app.uploader.UploadFile(ctx, content, header.Filename, customName)
	if storage.KindOf(err) != storage.KindUnsupportedFileType {
		metrics.ObserveUpload(fileTypeLabel(header.Filename), len(content), time.Since(start), err)
	}

	return result, err
}

func fileTypeLabel(filename string) string {
	ext, err := storage.ParseExtension(filename)
	if err != nil {
		return "unknown"
	}
	return ext.FileType()
}
