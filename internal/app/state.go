package app

import (
	"database/sql"
	"sync/atomic"

	"github.com/thenoetrevino/lista/internal/database"
)

// ManagedState is the process-wide handle to the connection pool. It is empty
// until initialization succeeds and is written at most once.
type ManagedState struct {
	db   atomic.Pointer[sql.DB]
	repo atomic.Pointer[database.TodoRepo]
}

// publish stores db. It reports false if a pool was already published.
func (s *ManagedState) publish(db *sql.DB) bool {
	if !s.db.CompareAndSwap(nil, db) {
		return false
	}
	s.repo.Store(database.NewTodoRepo(db))
	return true
}

// DB returns the published pool, if any
func (s *ManagedState) DB() (*sql.DB, bool) {
	db := s.db.Load()
	return db, db != nil
}

// Repo implements todo.RepoProvider
func (s *ManagedState) Repo() (database.TodoRepository, bool) {
	repo := s.repo.Load()
	if repo == nil {
		return nil, false
	}
	return repo, true
}

// Ready reports whether a pool has been published
func (s *ManagedState) Ready() bool {
	_, ok := s.Repo()
	return ok
}
