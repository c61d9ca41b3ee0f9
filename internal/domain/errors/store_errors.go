package errors

import "fmt"

// NotFoundError is returned when an operation references a nonexistent record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// PersistenceError is returned when the store fails. Materialization is
// all-or-nothing, so a PersistenceError is always safe to retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persistence failure during %s: %s", e.Op, e.Err.Error())
	}
	return fmt.Sprintf("persistence failure during %s", e.Op)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
