package todo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/models"
)

// Service defines all todo operations exposed to the host.
// Every method is safe for concurrent use.
type Service interface {
	CreateTodo(ctx context.Context, title, description string) (*models.Todo, error)
	GetTodos(ctx context.Context) ([]*models.Todo, error)
	UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error)
	DeleteTodo(ctx context.Context, id uint) error
}

// RepoProvider hands out the repository once the store has been initialized.
// ok is false until then.
type RepoProvider interface {
	Repo() (repo database.TodoRepository, ok bool)
}

// service implements Service interface
type service struct {
	state  RepoProvider
	logger *slog.Logger
}

// NewService creates a new todo service
func NewService(state RepoProvider, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		state:  state,
		logger: logger,
	}
}

func (s *service) repo() (database.TodoRepository, error) {
	repo, ok := s.state.Repo()
	if !ok {
		return nil, ErrNoManagedState
	}
	return repo, nil
}

// CreateTodo inserts a new incomplete todo
func (s *service) CreateTodo(ctx context.Context, title, description string) (*models.Todo, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	todo, err := repo.Create(ctx, title, description)
	if err != nil {
		return nil, &CommandError{
			Message: fmt.Sprintf("Error saving todo: %v", err),
			Err:     err,
		}
	}

	return todo, nil
}

// GetTodos returns every stored todo. An empty store yields an empty slice.
func (s *service) GetTodos(ctx context.Context) ([]*models.Todo, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	todos, err := repo.GetAll(ctx)
	if err != nil {
		return nil, &CommandError{
			Message: fmt.Sprintf("Failed to get todos %v", err),
			Err:     err,
		}
	}

	return todos, nil
}

// UpdateTodo reads the stored record, merges the requested fields into it and
// writes the result back. A blank title or description keeps the stored value;
// status is always taken from the request. If the write fails the error
// carries the record as it was before the update.
func (s *service) UpdateTodo(ctx context.Context, todo models.Todo) (*models.Todo, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	prev, err := repo.GetByID(ctx, todo.ID)
	if err != nil {
		err = classifyReadError(err)
		return nil, &CommandError{
			Message: fmt.Sprintf("Failed to fetch previous todo state (possible data loss): %v", err),
			Err:     err,
		}
	}

	merged := merge(prev, todo)

	if err := repo.Update(ctx, merged); err != nil {
		s.logger.Error("todo update failed",
			"todo_id", todo.ID,
			"error", err)
		return nil, &CommandError{
			Message:  fmt.Sprintf("Failed to update todo: %v", err),
			Previous: prev,
			Err:      err,
		}
	}

	return merged, nil
}

// DeleteTodo reads the stored record for recovery purposes, then removes it.
// If the delete fails the error carries the record that would have been removed.
func (s *service) DeleteTodo(ctx context.Context, id uint) error {
	repo, err := s.repo()
	if err != nil {
		return err
	}

	prev, err := repo.GetByID(ctx, id)
	if err != nil {
		err = classifyReadError(err)
		return &CommandError{
			Message: fmt.Sprintf("Failed to fetch todo for deletion (possible data loss): %v", err),
			Err:     err,
		}
	}

	if err := repo.Delete(ctx, id); err != nil {
		s.logger.Error("todo delete failed",
			"todo_id", id,
			"error", err)
		return &CommandError{
			Message:  fmt.Sprintf("Failed to delete todo: %v", err),
			Previous: prev,
			Err:      err,
		}
	}

	return nil
}

// merge applies the update policy: blank text fields retain the stored value,
// status is overwritten unconditionally, the ID never changes.
func merge(prev *models.Todo, req models.Todo) *models.Todo {
	merged := &models.Todo{
		ID:          prev.ID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}
	if strings.TrimSpace(req.Title) == "" {
		merged.Title = prev.Title
	}
	if strings.TrimSpace(req.Description) == "" {
		merged.Description = prev.Description
	}
	return merged
}

// classifyReadError tags a missing row as ErrTodoNotFound
func classifyReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrTodoNotFound, err)
	}
	return err
}
