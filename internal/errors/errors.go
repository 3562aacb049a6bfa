// Package errors provides structured error types and exit codes for refcheck.
package errors

import (
	"fmt"
)

// Exit codes returned by the refcheck CLI.
const (
	ExitSuccess      = 0 // Success
	ExitRuntimeError = 1 // Runtime error (unreadable artifact, strict-mode mismatch, etc.)
	ExitConfigError  = 2 // Configuration error (invalid config, bad flag, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
)

// CheckError is the base error type for refcheck.
type CheckError struct {
	Kind    ErrorKind
	Message string
	Case    string // Test case identifier if applicable
	Cause   error  // Underlying error
}

func (e *CheckError) Error() string {
	if e.Case != "" {
		return fmt.Sprintf("[%s] %s", e.Case, e.Message)
	}
	return e.Message
}

func (e *CheckError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *CheckError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *CheckError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *CheckError {
	return &CheckError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *CheckError {
	return Config(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// CaseError creates an error attributed to a specific test case.
func CaseError(caseID, message string, cause error) *CheckError {
	return &CheckError{
		Kind:    KindRuntime,
		Case:    caseID,
		Message: message,
		Cause:   cause,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *CheckError {
	return &CheckError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ce, ok := err.(*CheckError); ok {
		return ce.ExitCode()
	}
	return ExitRuntimeError
}
