// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// FileName is the database file created inside the base directory
const FileName = "data.db"

// Options tunes the connection pool opened by Open
type Options struct {
	BusyTimeout  time.Duration
	MaxOpenConns int
}

// DefaultOptions returns the pool settings used when none are configured
func DefaultOptions() Options {
	return Options{
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 4,
	}
}

// Open ensures baseDir and baseDir/data.db exist, opens a connection pool to the
// file and ensures the todos table exists. On any failure the pool is closed
// and nil is returned.
func Open(ctx context.Context, baseDir string, opts Options) (*sql.DB, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, FileName)
	slog.Info("database path", "path", dbPath)

	if err := ensureFile(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn(dbPath, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
		db.SetMaxIdleConns(opts.MaxOpenConns)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// ensureFile creates an empty database file. An existing file is reused as-is.
func ensureFile(dbPath string) error {
	f, err := os.OpenFile(dbPath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		slog.Info("database file created", "path", dbPath)
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("failed to create database file: %w", closeErr)
		}
		return nil
	case errors.Is(err, fs.ErrExist):
		slog.Info("database file already exists", "path", dbPath)
		return nil
	default:
		return fmt.Errorf("failed to create database file: %w", err)
	}
}

// dsn builds a modernc connection string. Pragmas given in the DSN are applied
// to every connection the pool opens, not just the first one.
func dsn(dbPath string, opts Options) string {
	s := "file:" + dbPath + "?_pragma=journal_mode(WAL)"
	if opts.BusyTimeout > 0 {
		s += fmt.Sprintf("&_pragma=busy_timeout(%d)", opts.BusyTimeout.Milliseconds())
	}
	return s
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
