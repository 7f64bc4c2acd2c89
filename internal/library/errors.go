package library

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author not found")
)

// ValidationError reports missing or malformed user input. Message is safe
// to render back to the user; no state change happened.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a unique-constraint violation (duplicate ISBN). The
// attempted insert was rolled back; Message names the conflicting value.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
