package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/tair/farmers-market/pkg/apperror"
)

// Response is the envelope every endpoint replies with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondError maps a domain error to an HTTP status and sends it.
func RespondError(w http.ResponseWriter, err error) {
	RespondJSON(w, StatusForError(err), Response{
		Success: false,
		Error:   err.Error(),
	})
}

// RespondBadRequest reports a malformed request before it reaches the core.
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, Response{
		Success: false,
		Error:   message,
	})
}

// StatusForError translates the error taxonomy to HTTP status codes.
func StatusForError(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindValidation:
		return http.StatusBadRequest
	case apperror.KindInsufficientStock:
		return http.StatusConflict
	case apperror.KindInvalidState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
