package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound signals a lookup by id with no matching record.
var ErrNotFound = errors.New("record not found")

// ValidationError rejects a request before any state change: a required field
// is missing, has the wrong shape, or fails a format rule.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ConflictError rejects a create that would violate a uniqueness constraint.
// The only enforced constraint is the volunteer e-mail.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}
