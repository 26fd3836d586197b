package common

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthorized")
)

// ValidationError reports the first offending input path.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NewNotFound wraps ErrNotFound with the missing entity name, e.g. "post not found".
func NewNotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
