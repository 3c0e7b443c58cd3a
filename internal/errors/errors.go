// Package errors provides structured error types and exit codes for parsecheck.
package errors

import (
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess          = 0 // Success (all fixtures passed)
	ExitRuntimeError     = 1 // Runtime error (fixture failed, run aborted, etc.)
	ExitConfigError      = 2 // Configuration error (invalid config, etc.)
	ExitEnvironmentError = 3 // Environment error (fixture directory unreadable, parser missing, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindValidation
	KindDiscovery
	KindEnvironment
)

// HarnessError is the base error type for parsecheck.
type HarnessError struct {
	Kind    ErrorKind
	Message string
	Fixture string // Fixture path if applicable
	Cause   error  // Underlying error
}

func (e *HarnessError) Error() string {
	if e.Fixture != "" {
		return fmt.Sprintf("[%s] %s", e.Fixture, e.Message)
	}
	return e.Message
}

func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *HarnessError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindDiscovery, KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *HarnessError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *HarnessError {
	return Config(fmt.Sprintf(format, args...))
}

// Discovery creates a new discovery error (fixture directory unreadable).
// Discovery errors are fatal for the whole run: no fixtures can be processed.
func Discovery(message string, cause error) *HarnessError {
	return &HarnessError{
		Kind:    KindDiscovery,
		Message: message,
		Cause:   cause,
	}
}

// Environment creates a new environment error.
func Environment(message string) *HarnessError {
	return &HarnessError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *HarnessError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// FixtureError creates an error for a specific fixture.
func FixtureError(fixture, message string) *HarnessError {
	return &HarnessError{
		Kind:    KindRuntime,
		Fixture: fixture,
		Message: message,
	}
}

// IsDiscovery reports whether err is a discovery error.
func IsDiscovery(err error) bool {
	he, ok := err.(*HarnessError)
	return ok && he.Kind == KindDiscovery
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if he, ok := err.(*HarnessError); ok {
		return he.ExitCode()
	}
	return ExitRuntimeError
}
