// Package errs defines the error taxonomy shared by the repository and the
// HTTP handlers.
//
// Store implementations wrap driver errors with one of the sentinels below
// using %w, so handlers can branch with errors.Is and map the result to a
// status code through HTTPStatus.
package errs

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation marks a request missing required fields.
	ErrValidation = errors.New("validation error")

	// ErrInvalidIdentifier marks a string that is not a well formed store identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrStoreUnavailable marks a store that could not be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrWriteRejected marks a write refused by the store, e.g. a constraint violation.
	ErrWriteRejected = errors.New("write rejected")

	// ErrNotFound marks an update that matched no document.
	ErrNotFound = errors.New("not found")
)

// ValidationError lists the required fields absent from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

// Is lets errors.Is(err, ErrValidation) match any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// HTTPStatus maps err to the status code a handler should respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrWriteRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
