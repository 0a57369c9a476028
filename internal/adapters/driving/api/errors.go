// Package api serves the smartdocs REST API.
//
// Every JSON response carries a success flag: {"success": true, ...} on
// success and {"success": false, "error": "..."} on failure.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
	"github.com/jana0025/IR-PROJECT/internal/logger"
)

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatusFor maps a domain error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrJournalUnavailable):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSearchUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes the failure envelope with the status derived from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeErrorStatus(w, r, StatusFor(err), err.Error())
}

func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	if status >= http.StatusInternalServerError {
		logger.Error("%s %s: %s", r.Method, r.URL.Path, message)
	} else {
		logger.Debug("%s %s: %s", r.Method, r.URL.Path, message)
	}
	writeBody(w, status, ErrorResponse{Success: false, Error: message})
}

// writeJSON writes fields inside the success envelope.
func writeJSON(w http.ResponseWriter, status int, fields map[string]any) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logger.Error("failed to marshal response: %v", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("Internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logger.Debug("failed to write response: %v", err)
	}
}
