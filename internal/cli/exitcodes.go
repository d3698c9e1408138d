package cli

import (
	"errors"

	"github.com/thenoetrevino/lista/internal/models"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Store errors, a store that never became ready,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Todo not found, or any case where a resource ID doesn't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input, corrupted data, or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown status text, or any case where input fails validation rules.
	ExitValidation = 5
)

// Error codes reported by todo commands
const (
	CodeInitialization = "INITIALIZATION_ERROR"
	CodeNoManagedState = "NO_MANAGED_STATE"
	CodeNotFound       = "TODO_NOT_FOUND"
	CodeInvalidStatus  = "INVALID_STATUS"
	CodeStoreError     = "STORE_ERROR"
)

// Classify maps a command error onto an error code and exit code
func Classify(err error) (code string, exit int) {
	switch {
	case err == nil:
		return "", ExitSuccess
	case errors.Is(err, todoservice.ErrTodoNotFound):
		return CodeNotFound, ExitNotFound
	case errors.Is(err, models.ErrInvalidStatus):
		return CodeInvalidStatus, ExitValidation
	case errors.Is(err, todoservice.ErrNoManagedState):
		return CodeNoManagedState, ExitError
	default:
		return CodeStoreError, ExitError
	}
}

// ExitCoder is implemented by errors that carry their own exit code
type ExitCoder interface {
	ExitCode() int
}

// exitError tags an already-reported error with the process exit code
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// WithExitCode wraps err so the entrypoint exits with code
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitError{err: err, code: code}
}

// ExitCode returns the process exit code for an error returned by a command
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitError
}
