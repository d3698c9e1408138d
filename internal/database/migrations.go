package database

import (
	"context"
	"database/sql"
)

const createTodosTable = `
	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		description TEXT,
		status TEXT
	)
`

// runMigrations creates the database schema. It is safe to run on every startup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, createTodosTable)
	return err
}
