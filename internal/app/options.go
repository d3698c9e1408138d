package app

import (
	"log/slog"

	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/events"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus       events.EventBus
	logger    *slog.Logger
	dbOptions database.Options
}

// WithEventBus sets the event bus used for readiness signalling
func WithEventBus(bus events.EventBus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithDatabaseOptions sets the connection pool options used by SetupDB
func WithDatabaseOptions(opts database.Options) Option {
	return func(cfg *appConfig) {
		cfg.dbOptions = opts
	}
}
