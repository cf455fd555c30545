package main

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// suggestionFor picks a hint from the domain error code of err.
func suggestionFor(err error) string {
	var domainErr *form.DomainError
	if !errors.As(err, &domainErr) {
		return "Re-run with --verbose for details."
	}
	switch domainErr.Code {
	case form.ErrCodeNotFound:
		return "Check the path and the ids the recipe refers to."
	case form.ErrCodeInvalidInput:
		if field, ok := domainErr.Context["field"]; ok {
			return fmt.Sprintf("Fix the value of %v and try again.", field)
		}
		return "Fix the recipe and run 'formsmith validate' to check it."
	default:
		return "Re-run with --verbose for details."
	}
}
