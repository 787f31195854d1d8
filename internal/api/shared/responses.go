package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aroundtheus/around-api/internal/redact"
)

// ErrorResponse defines the standard error response structure. Every failed
// request, whatever the layer that rejected it, serializes to this one shape.
type ErrorResponse struct {
	Message string `json:"message"`
}

// DataResponse wraps a single resource in the {data: ...} envelope used by
// the mutation and single-resource read endpoints.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a JSON response wrapping the payload in {data: ...}.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	RespondWithJSON(w, r, status, DataResponse{Data: data})
}

// RespondWithError writes a JSON error response with the given status code
// and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Message: message})
}

// RespondWithErrorAndLog writes a JSON error response carrying only the safe
// user message, and logs the underlying error in redacted form. 5xx responses
// log at ERROR, everything else at DEBUG. This is how handlers surface
// failures they did not construct themselves.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if status == http.StatusTooManyRequests {
		logLevel = slog.LevelWarn
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Message: userMessage})
}
