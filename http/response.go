package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
)

const maxBodyBytes = 1 << 20

var errUnsupportedMediaType = errors.New("Content-Type must be application/json")

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// decodeJSON reads a single JSON object from the request body, rejecting
// fields the target type does not declare.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return errUnsupportedMediaType
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if dec.More() {
		return errors.New("decode body: unexpected data after JSON object")
	}
	return nil
}

// writeDecodeError maps a decodeJSON failure to 415 or 400.
func writeDecodeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if errors.Is(err, errUnsupportedMediaType) {
		writeError(w, logger, http.StatusUnsupportedMediaType, err.Error(), nil)
		return
	}
	logger.Debug("invalid request body", "error", err)
	writeError(w, logger, http.StatusBadRequest, "invalid request body", []string{err.Error()})
}

// writeJSON encodes v into a buffer first so a failed encoding does not leave
// a half-written success response.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, message string, errs []string) {
	writeJSON(w, logger, status, errorResponse{Message: message, Errors: errs})
}
