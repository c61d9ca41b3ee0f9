package errors

import "fmt"

// ValidationError is returned when request input is malformed. It never
// reaches persistence; the caller can fix the input and resubmit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// DecompositionServiceError is returned when the external decomposition
// service is unreachable, times out, or returns a malformed response.
// No partial result is ever surfaced alongside it.
type DecompositionServiceError struct {
	Reason string
	Err    error
}

func (e *DecompositionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decomposition service: %s: %s", e.Reason, e.Err.Error())
	}
	return fmt.Sprintf("decomposition service: %s", e.Reason)
}

func (e *DecompositionServiceError) Unwrap() error {
	return e.Err
}

// NewDecompositionServiceError creates a new DecompositionServiceError
func NewDecompositionServiceError(reason string, err error) *DecompositionServiceError {
	return &DecompositionServiceError{Reason: reason, Err: err}
}

// EmptySelectionError is returned when materialization is attempted with
// zero selected suggestions.
type EmptySelectionError struct{}

func (e *EmptySelectionError) Error() string {
	return "no subtask suggestions selected"
}

// NewEmptySelectionError creates a new EmptySelectionError
func NewEmptySelectionError() *EmptySelectionError {
	return &EmptySelectionError{}
}
