package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/planner-app/backend/internal/validation"
)

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code, a human-readable message, and
// optional per-field details for validation failures.
type ErrorDetail struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// writeJSON serializes v with the given status. Encoding errors at this point
// cannot be reported to the client anymore, so they are only logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write response", "error", err)
	}
}

// writeError writes an ErrorResponse with the given status, code, and message.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// writeValidationError writes a 422 carrying field-level details when err is
// a validation.FieldErrors, or the plain error message otherwise (e.g. a
// malformed request body).
func writeValidationError(w http.ResponseWriter, err error) {
	detail := ErrorDetail{Code: "validation_error", Message: "invalid request"}

	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		detail.Fields = fieldErrs
	} else {
		detail.Message = err.Error()
	}

	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: detail})
}
