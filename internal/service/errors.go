package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a chat request fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a named table does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExternalService is returned when the catalog or intent provider fails.
	ErrExternalService = errors.New("external service error")
)

// ValidationError represents a validation error with a field name.
// It matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// ProviderError marks err as a provider failure so it matches ErrExternalService
// while keeping the original cause reachable.
func ProviderError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return WrapError(fmt.Errorf("%w: %w", ErrExternalService, err), msg)
}
