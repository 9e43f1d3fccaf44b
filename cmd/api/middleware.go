package main

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
)

// recoverPanic turns a panic into the internal error envelope instead of a dropped connection.
func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
		writer := middleware.NewWrapResponseWriter(w, request.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("%v", rec)
			app.logger.Errorw("unhandled panic",
				"method", request.Method,
				"path", request.URL.Path,
				"error", err.Error(),
				"stack", string(debug.Stack()),
			)
			if notifyErr := app.slackNotifier.NotifyServerError(request.Context(), err, request); notifyErr != nil {
				app.logger.Warnw("slack notification failed", "error", notifyErr)
			}

			// Headers already sent; the client sees a truncated response.
			if writer.Status() != 0 {
				return
			}

			_ = writeJSON(writer, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Internal server error",
				"detail":  err.Error(),
			})
		}()

		next.ServeHTTP(writer, request)
	})
}
