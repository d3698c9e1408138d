package todo

import (
	"errors"

	"github.com/thenoetrevino/lista/internal/models"
)

// Todo-related errors
var (
	// ErrNoManagedState is returned when the store has not been initialized,
	// either because setup has not run yet or because it failed.
	ErrNoManagedState = errors.New("no managed state: database is not initialized")

	// ErrTodoNotFound indicates the referenced todo does not exist
	ErrTodoNotFound = errors.New("todo not found")
)

// CommandError is a store failure reported to the caller. Previous holds the
// last known state of the record when a mutation failed after it was read,
// so the caller can restore or display it. It is nil when nothing was read.
type CommandError struct {
	Message  string
	Previous *models.Todo
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the underlying store error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// PreviousState extracts the recovery snapshot carried by err, if any
func PreviousState(err error) (*models.Todo, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Previous != nil {
		return cmdErr.Previous, true
	}
	return nil, false
}
