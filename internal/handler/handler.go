package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shoplist/internal/model"

	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// SaveStatus reports whether a mutation reached storage.
type SaveStatus struct {
	Saved   bool   `json:"saved"`
	Warning string `json:"warning,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a list service error to an HTTP status.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var de *model.DomainError
	switch {
	case model.IsValidation(err) && errors.As(err, &de):
		writeError(w, http.StatusBadRequest, de.Code, de.Message, logger)
	case errors.Is(err, model.ErrProductNotFound):
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, model.ErrProductNotFound.Message, logger)
	default:
		logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
	}
}

// saveStatus splits a mutation error into the save outcome and any error that
// stopped the mutation altogether.
func saveStatus(err error) (SaveStatus, error) {
	switch {
	case err == nil:
		return SaveStatus{Saved: true}, nil
	case errors.Is(err, model.ErrNotSaved):
		return SaveStatus{Saved: false, Warning: model.ErrNotSaved.Message}, nil
	default:
		return SaveStatus{}, err
	}
}

// decodeBody reads a size-limited JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}
