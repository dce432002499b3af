package taskstore

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every error Add returns.
var ErrValidation = errors.New("invalid task input")

// ValidationError names the form field that was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
