package store

import "errors"

var (
	// ErrNotFound means the referenced id affected zero rows.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness constraint was violated.
	ErrConflict = errors.New("duplicate record")
)

// ValidationError is a caller mistake, never a server fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
