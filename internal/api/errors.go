package api

import (
	"errors"
	"net/http"

	"github.com/statlab/census-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Malformed calculator input: recoverable by the caller, re-prompt
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest

	// Structurally valid request but the dataset fails the schema check
	case errors.Is(err, domain.ErrMissingColumn):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-friendly error message based on the
// error type. Domain errors carry no sensitive detail (column names, row
// numbers), so their text passes through; anything else is replaced with a
// generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please enter valid numbers separated by commas; the list must contain nine numbers"

	case errors.Is(err, domain.ErrMissingColumn),
		errors.Is(err, domain.ErrInvalidRecord):
		// Already phrased for the caller: names the column or row at fault.
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
