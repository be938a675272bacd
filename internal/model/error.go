package model

import "fmt"

// Standard error codes for domain failures.
const (
	ErrCodeMissingField = "MISSING_FIELD"
	ErrCodeDatabase     = "DATABASE_ERROR"
)

// DomainError is a client-side failure; it maps to HTTP 400.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Required-field errors, one per resource.
var (
	ErrUserFieldsRequired    = NewDomainError(ErrCodeMissingField, "Name and email are required")
	ErrProductFieldsRequired = NewDomainError(ErrCodeMissingField, "Name and price are required")
	ErrOrderFieldsRequired   = NewDomainError(ErrCodeMissingField, "User ID and total amount are required")
)

// DatabaseError reports a failed connection or statement. Err holds the
// driver error unchanged so its text can be surfaced to the caller.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError wraps err as a DatabaseError for operation op.
func NewDatabaseError(op string, err error) *DatabaseError {
	return &DatabaseError{Op: op, Err: err}
}
