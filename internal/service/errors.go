package service

import "fmt"

// SetServiceError is a custom error type for flashcard-set service errors.
type SetServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for SetServiceError.
func (e *SetServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("set service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("set service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *SetServiceError) Unwrap() error {
	return e.Err
}

// NewSetServiceError creates a new SetServiceError.
func NewSetServiceError(operation, message string, err error) *SetServiceError {
	return &SetServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
