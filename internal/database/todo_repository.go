package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/lista/internal/models"
)

// TodoRepo handles all todo-related database operations
type TodoRepo struct {
	db *sql.DB
}

// NewTodoRepo wraps an open connection pool
func NewTodoRepo(db *sql.DB) *TodoRepo {
	return &TodoRepo{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo maps a (id, title, description, status) row onto a Todo
func scanTodo(row rowScanner) (*models.Todo, error) {
	var (
		todo        models.Todo
		title       sql.NullString
		description sql.NullString
	)
	if err := row.Scan(&todo.ID, &title, &description, &todo.Status); err != nil {
		return nil, err
	}
	todo.Title = NullStringToString(title)
	todo.Description = NullStringToString(description)
	return &todo, nil
}

// Create inserts a new incomplete todo and returns it with the store-assigned ID.
// The insert and the ID retrieval happen in the same statement.
func (r *TodoRepo) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	var id uint
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (title, description, status)
		 VALUES (?, ?, ?)
		 RETURNING id`,
		title, description, models.StatusIncomplete,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return &models.Todo{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      models.StatusIncomplete,
	}, nil
}

// GetAll retrieves every todo in table order
func (r *TodoRepo) GetAll(ctx context.Context) ([]*models.Todo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, status FROM todos`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]*models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}

// GetByID retrieves a single todo. Returns sql.ErrNoRows if it does not exist.
func (r *TodoRepo) GetByID(ctx context.Context, id uint) (*models.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, status FROM todos WHERE id = ?`,
		id,
	)
	return scanTodo(row)
}

// Update overwrites title, description and status of the todo with the given ID
func (r *TodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, status = ?
		 WHERE id = ?`,
		todo.Title, todo.Description, todo.Status, todo.ID,
	)
	return err
}

// Delete removes the todo with the given ID
func (r *TodoRepo) Delete(ctx context.Context, id uint) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	return err
}
