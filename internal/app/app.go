package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
	todoservice "github.com/thenoetrevino/lista/internal/services/todo"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	state     *ManagedState
	bus       events.EventBus
	logger    *slog.Logger
	dbOptions database.Options

	setupOnce   sync.Once
	setupDone   chan struct{}
	setupStatus events.DatabaseStatus // Written before setupDone is closed

	// Service layer
	TodoService todoservice.Service
}

// New creates a new App. The store is not opened here; see SetupDB and OnFrontReady.
func New(opts ...Option) *App {
	cfg := appConfig{
		dbOptions: database.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	state := &ManagedState{}
	return &App{
		state:       state,
		bus:         cfg.bus,
		logger:      cfg.logger,
		dbOptions:   cfg.dbOptions,
		setupDone:   make(chan struct{}),
		TodoService: todoservice.NewService(state, cfg.logger),
	}
}

// Events returns the bus carrying front-ready and dbstatus events
func (a *App) Events() events.EventBus {
	return a.bus
}

// State returns the managed store handle
func (a *App) State() *ManagedState {
	return a.state
}

// SetupDB opens the store in baseDir and publishes it. The outcome is reported
// as a dbstatus event, never to the caller: on failure nothing is published and
// the event carries the error text. Only the first call does any work.
func (a *App) SetupDB(ctx context.Context, baseDir string) {
	a.setupOnce.Do(func() {
		defer close(a.setupDone)
		a.setupDB(ctx, baseDir)
	})
}

func (a *App) setupDB(ctx context.Context, baseDir string) {
	db, err := database.Open(ctx, baseDir, a.dbOptions)
	if err == nil && !a.state.publish(db) {
		err = errors.New("a database is already open for this app")
		if closeErr := db.Close(); closeErr != nil {
			a.logger.Error("error closing db", "error", closeErr)
		}
	}
	if err != nil {
		a.logger.Error("database setup failed", "dir", baseDir, "error", err)
		a.emitStatus(err.Error())
		return
	}

	a.logger.Info("database ready", "dir", baseDir)
	a.emitStatus(events.StatusReady)
}

func (a *App) emitStatus(status string) {
	a.setupStatus = events.DatabaseStatus{Status: status}
	if err := a.bus.Emit(events.DatabaseStatusEvent(status)); err != nil {
		a.logger.Warn("failed to emit database status", "status", status, "error", err)
	}
}

// OnFrontReady arranges for SetupDB to run in its own goroutine when the host
// emits its front-ready event. Only the first front-ready event is honoured.
func (a *App) OnFrontReady(ctx context.Context, baseDir string) (cancel func()) {
	return a.bus.Once(events.EventFrontReady, func(events.Event) {
		go a.SetupDB(ctx, baseDir)
	})
}

// Boot plays the host's part of the startup handshake: it listens for the
// dbstatus event, registers the front-ready trigger, signals front-ready and
// waits for the resulting status. If setup already ran, its status is returned.
func (a *App) Boot(ctx context.Context, baseDir string) (events.DatabaseStatus, error) {
	if status, done := a.SetupStatus(); done {
		return status, nil
	}

	listenCtx, stop := context.WithCancel(ctx)
	defer stop()

	statusCh := a.bus.Listen(listenCtx, events.EventDatabaseStatus)
	cancelTrigger := a.OnFrontReady(ctx, baseDir)
	defer cancelTrigger()

	if err := a.bus.Emit(events.Event{Type: events.EventFrontReady}); err != nil {
		return events.DatabaseStatus{}, err
	}

	select {
	case ev, ok := <-statusCh:
		if !ok {
			return events.DatabaseStatus{}, events.ErrBusClosed
		}
		status, _ := ev.Payload.(events.DatabaseStatus)
		return status, nil
	case <-a.setupDone:
		// Setup finished between the check above and Listen
		status, _ := a.SetupStatus()
		return status, nil
	case <-ctx.Done():
		return events.DatabaseStatus{}, ctx.Err()
	}
}

// SetupDone is closed once SetupDB has finished, successfully or not
func (a *App) SetupDone() <-chan struct{} {
	return a.setupDone
}

// SetupStatus returns the outcome of SetupDB. done is false until it finished.
func (a *App) SetupStatus() (status events.DatabaseStatus, done bool) {
	select {
	case <-a.setupDone:
		return a.setupStatus, true
	default:
		return events.DatabaseStatus{}, false
	}
}

// Close releases the store, if one was published, and closes the event bus.
func (a *App) Close() error {
	var firstErr error
	if db, ok := a.state.DB(); ok {
		if err := db.Close(); err != nil {
			firstErr = err
		}
	}
	if err := a.bus.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
