package errors

import (
	"fmt"
	"strings"
)

// BusinessError is a domain-rule or not-found failure. The caller can recover
// by correcting its input.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError creates a new business error.
func NewBusinessError(format string, args ...any) *BusinessError {
	return &BusinessError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError is a store-level uniqueness violation surfaced to the caller.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s already registered", e.Field)
	}
	return "resource already registered"
}

// NewConflictError creates a conflict error for the violating field.
func NewConflictError(field string) *ConflictError {
	return &ConflictError{Field: field}
}

// IllegalStateError signals an internal inconsistency or cross-reference
// anomaly. It is not user-correctable and is reported distinctly from
// ordinary not-found failures.
type IllegalStateError struct {
	Message string
}

func (e *IllegalStateError) Error() string {
	return e.Message
}

// NewIllegalStateError creates a new illegal-state error.
func NewIllegalStateError(message string) *IllegalStateError {
	return &IllegalStateError{Message: message}
}

// ValidationError represents a single failed field check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ValidationErrors aggregates every failing field of a request so the caller
// sees all of them at once.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, ve := range e.Errors {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field failure.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, NewValidationError(field, message))
}

// HasErrors reports whether any field failed.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Fields returns the failures as a field -> message map.
func (e *ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for _, ve := range e.Errors {
		fields[ve.Field] = ve.Message
	}
	return fields
}
