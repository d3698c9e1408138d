package database

import (
	"context"

	"github.com/thenoetrevino/lista/internal/models"
)

// TodoReader defines read operations for todos.
type TodoReader interface {
	GetAll(ctx context.Context) ([]*models.Todo, error)
	GetByID(ctx context.Context, id uint) (*models.Todo, error)
}

// TodoWriter defines write operations for todos.
type TodoWriter interface {
	Create(ctx context.Context, title, description string) (*models.Todo, error)
	Update(ctx context.Context, todo *models.Todo) error
	Delete(ctx context.Context, id uint) error
}

// TodoRepository combines all todo-related operations.
type TodoRepository interface {
	TodoReader
	TodoWriter
}

// Compile-time verification that *TodoRepo implements TodoRepository
var _ TodoRepository = (*TodoRepo)(nil)
