package daemon

import (
	"encoding/json"
	"errors"

	"github.com/thenoetrevino/lista/internal/events"
	"github.com/thenoetrevino/lista/internal/models"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// Commands understood by the daemon
const (
	CmdAddTodo    = "add_todo"
	CmdGetTodos   = "get_todos"
	CmdUpdateTodo = "update_todo"
	CmdDeleteTodo = "delete_todo"
	CmdSubscribe  = "subscribe"
	CmdFrontReady = "front_ready"
	CmdMetrics    = "metrics"
)

// Error codes carried in ErrorPayload.Code
const (
	CodeNoManagedState = "NO_MANAGED_STATE"
	CodeNotFound       = "NOT_FOUND"
	CodeStoreError     = "STORE_ERROR"
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
)

// Request is one newline-delimited JSON command from a client
type Request struct {
	ID   int64           `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers the Request with the same ID
type Response struct {
	ID    int64         `json:"id"`
	OK    bool          `json:"ok"`
	Data  any           `json:"data,omitempty"`
	Error *ErrorPayload `json:"error,omitempty"`
}

// ErrorPayload is the failure half of a Response. Previous is the record as it
// was before a failed update/delete, or null when no snapshot exists.
type ErrorPayload struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Previous *models.Todo `json:"previous"`
}

// EventMessage pushes a bus event to subscribed clients
type EventMessage struct {
	Event   events.EventType `json:"event"`
	Payload any              `json:"payload"`
}

type addTodoArgs struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTodoArgs struct {
	Todo models.Todo `json:"todo"`
}

type deleteTodoArgs struct {
	ID uint `json:"id"`
}

// errorPayload maps a service error onto the wire shape
func errorPayload(err error) *ErrorPayload {
	payload := &ErrorPayload{
		Code:    CodeStoreError,
		Message: err.Error(),
	}

	switch {
	case errors.Is(err, todoservice.ErrNoManagedState):
		payload.Code = CodeNoManagedState
	case errors.Is(err, todoservice.ErrTodoNotFound):
		payload.Code = CodeNotFound
	}

	if prev, ok := todoservice.PreviousState(err); ok {
		payload.Previous = prev
	}
	return payload
}
