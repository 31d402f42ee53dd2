// Package errors provides shared error types that map to CLI exit codes,
// enabling consistent error handling and diagnostics across the tool.
package errors

import (
	"fmt"
)

// Kind represents the category of an error, which determines the CLI exit code.
type Kind int

const (
	// KindInvalidArgs represents invalid input arguments (bad identifier,
	// missing destination). CLI exit code: 2
	KindInvalidArgs Kind = iota

	// KindCollision represents a target skill directory that already exists.
	// CLI exit code: 3
	KindCollision

	// KindCreation represents a failed filesystem operation (directory
	// creation, file write, permission change). CLI exit code: 4
	KindCreation

	// KindGeneral represents a general error that doesn't fit other categories.
	// CLI exit code: 1
	KindGeneral
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgs:
		return "InvalidArgs"
	case KindCollision:
		return "Collision"
	case KindCreation:
		return "Creation"
	case KindGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// Error represents a structured error with kind, message, cause, and an
// optional suggestion. It implements the standard error interface and maps
// to CLI exit codes.
type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Suggestion string // Optional suggestion for resolving the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CLIExitCode returns the appropriate CLI exit code for this error.
func (e *Error) CLIExitCode() int {
	switch e.Kind {
	case KindInvalidArgs:
		return 2
	case KindCollision:
		return 3
	case KindCreation:
		return 4
	case KindGeneral:
		return 1
	default:
		return 1
	}
}

// WithSuggestion adds a suggestion to the error and returns it for chaining.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// Constructor functions

// InvalidArgs creates an error for invalid arguments.
func InvalidArgs(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgs,
		Message: fmt.Sprintf(format, args...),
	}
}

// Collision creates an error for a skill directory that already exists.
func Collision(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindCollision,
		Message: fmt.Sprintf(format, args...),
	}
}

// Creation creates an error for a failed filesystem operation.
func Creation(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindCreation,
		Message: fmt.Sprintf(format, args...),
	}
}

// General creates a general error.
func General(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindGeneral,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a specific kind and message.
func Wrap(err error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// WrapCreation wraps an error as a creation error.
func WrapCreation(err error, format string, args ...interface{}) *Error {
	return Wrap(err, KindCreation, format, args...)
}

// Helper functions for extracting error information

// GetKind extracts the Kind from an error, returning KindGeneral if the error
// is not an *Error.
func GetKind(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindGeneral
}

// GetCLIExitCode extracts the CLI exit code from an error.
func GetCLIExitCode(err error) int {
	if e, ok := err.(*Error); ok {
		return e.CLIExitCode()
	}
	return 1 // General error
}

// Is returns true if the error is of the specified kind.
func Is(err error, kind Kind) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}
	return false
}
