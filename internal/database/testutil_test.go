package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/lista/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB opens a file-backed database in a fresh temp directory
func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dir := t.TempDir()

	db, err := Open(context.Background(), dir, DefaultOptions())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db, dir
}

// insertRawTodo bypasses the repository so tests can plant arbitrary rows
func insertRawTodo(t *testing.T, db *sql.DB, title, description, status string) uint {
	t.Helper()
	var id uint
	err := db.QueryRowContext(context.Background(),
		"INSERT INTO todos (title, description, status) VALUES (?, ?, ?) RETURNING id",
		title, description, status,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert raw todo: %v", err)
	}
	return id
}

// mustCreate creates a todo through the repository or fails the test
func mustCreate(t *testing.T, repo *TodoRepo, title, description string) *models.Todo {
	t.Helper()
	todo, err := repo.Create(context.Background(), title, description)
	if err != nil {
		t.Fatalf("Failed to create todo: %v", err)
	}
	return todo
}
