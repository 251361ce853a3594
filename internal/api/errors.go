package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/apperr"
	"github.com/phrazzld/taskboard-api/internal/platform/logger"
	"github.com/phrazzld/taskboard-api/internal/redact"
)

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handler adapts fn to http.HandlerFunc, routing returned errors to HandleError.
func Handler(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww, ok := w.(middleware.WrapResponseWriter)
		if !ok {
			ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		}
		if err := fn(ww, r); err != nil {
			HandleError(ww, r, err)
		}
	}
}

// HandleError writes the error response for err.
//
// An *apperr.Error is reported with its own status and message. Any other
// error is logged and answered with 400 and a redacted message. If the
// response has already started, the handler is aborted with
// http.ErrAbortHandler instead, since no well-formed error body can follow.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	// The trace middleware already attached trace_id to the context logger.
	log := logger.FromContext(r.Context()).With(
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)

	if ww, ok := w.(middleware.WrapResponseWriter); ok && ww.Status() != 0 {
		log.Error("error after response was started",
			redact.Attr(err),
			slog.Int("status_code", ww.Status()))
		// ALLOW-PANIC: net/http treats ErrAbortHandler as a silent abort
		panic(http.ErrAbortHandler)
	}

	status := apperr.StatusOf(err)
	if status == 0 {
		message := redact.Error(err)
		log.Error("unhandled error",
			slog.Int("status_code", http.StatusBadRequest),
			slog.String("error_type", fmt.Sprintf("%T", err)),
			slog.String("error", message))
		shared.RespondWithError(w, r, http.StatusBadRequest, message)
		return
	}

	e, _ := apperr.As(err)
	log.Debug("request failed",
		slog.Int("status_code", status),
		slog.String("message", e.Message),
		redact.Attr(err))
	shared.RespondWithError(w, r, status, e.Message)
}
