package http

import (
	"errors"

	"librarium/internal/library"
)

// userMessage extracts the user-visible message from a recoverable service
// error. Returns false for unexpected errors, which should not reach the
// user verbatim.
func userMessage(err error) (string, bool) {
	var validationErr *library.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message, true
	}
	var conflictErr *library.ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Message, true
	}
	if errors.Is(err, library.ErrAuthorNotFound) {
		return "Author not found.", true
	}
	return "", false
}
