package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondJSON writes v as a JSON body with the given status code.
// Encoding failures at this point cannot be reported to the client anymore
// (the status line is already gone), so they are only logged.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response body", "error", err)
	}
}

// respondError writes a standard error body.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// respondServiceError maps a service-layer error onto the HTTP taxonomy:
// ErrNotFound → 404, ErrValidation → 422, ErrPreconditionFailed → 412, and
// anything else → 500 with the backend's message passed through.
// notFoundMessage is supplied by the caller because the handler is the layer
// that knows what was being looked up.
func respondServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrPreconditionFailed):
		respondError(w, http.StatusPreconditionFailed, "precondition_failed", "supplied If-Match does not match the current resource")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.AddressService.Update: validation error: limit must be between
// 1 and 100" → "limit must be between 1 and 100".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
