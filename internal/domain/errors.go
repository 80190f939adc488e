package domain

import "fmt"

// ValidationError is a malformed or out-of-range input, detected before any
// write is issued.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError is a reference to a row that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError is a business-rule conflict: double-booking a table within
// the overlap window, or modifying a closed order.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// OverrideRequiredError is a soft warning that aborts the operation unless
// the caller explicitly overrides it.
type OverrideRequiredError struct {
	Warning string
}

func (e *OverrideRequiredError) Error() string {
	return "override required: " + e.Warning
}

// StorageError wraps a failure from the underlying engine.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

func Storage(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
