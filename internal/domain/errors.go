package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when no event has the requested id.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing request input. Nothing has been written when it is returned.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Problems, "; ")
}

// NewValidationError returns a ValidationError with the given problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

// StorageOp names the store operation that failed.
type StorageOp string

const (
	OpSubmit StorageOp = "submit"
	OpList   StorageOp = "list"
	OpFetch  StorageOp = "fetch"
	OpDelete StorageOp = "delete"
)

// StorageError wraps a failed EventStore call. Message is safe to show to callers;
// Err carries the store's own error and is only logged.
type StorageError struct {
	Op      StorageOp
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }
