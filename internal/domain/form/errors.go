package form

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the failure categories surfaced by form mutations.
type ErrorCode string

const (
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
)

// DomainError represents a typed error enriched with contextual data. Every
// mutation that returns a DomainError has left the form untouched.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is allows errors.Is comparisons against other DomainError values.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// CodeOf returns the ErrorCode carried by err, or "" when err is not a
// DomainError.
func CodeOf(err error) ErrorCode {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsInvalidInput reports whether err is an INVALID_INPUT domain error.
func IsInvalidInput(err error) bool {
	return CodeOf(err) == ErrCodeInvalidInput
}

// IsNotFound reports whether err is a NOT_FOUND domain error.
func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newInvalidInputError(message string, context map[string]interface{}) *DomainError {
	return newDomainError(ErrCodeInvalidInput, message, nil, context)
}

func newMissingFieldError(field string) *DomainError {
	return newInvalidInputError("missing required field", map[string]interface{}{
		"field": field,
	})
}

// IsIDTaken reports whether err rejected an id that is already assigned or
// reserved. Callers drawing ids from a generator retry with a fresh one.
func IsIDTaken(err error) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != ErrCodeInvalidInput {
		return false
	}
	return domainErr.Context["reason"] == reasonIDTaken
}

const reasonIDTaken = "id_taken"

func newIDTakenError(message, field, id string) *DomainError {
	return newInvalidInputError(message, map[string]interface{}{
		field:    id,
		"reason": reasonIDTaken,
	})
}

func newQuestionNotFoundError(id string) *DomainError {
	return newDomainError(ErrCodeNotFound, "question not found", nil, map[string]interface{}{
		"question_id": id,
	})
}

func newSectionNotFoundError(id string) *DomainError {
	return newDomainError(ErrCodeNotFound, "section not found", nil, map[string]interface{}{
		"section_id": id,
	})
}

func withContext(err error, ctx map[string]interface{}) error {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.WithContext(ctx)
	}
	return err
}
