package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/daemon"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logCloser, err := logging.Init(cfg.LogDir(), cfg.Log.Level)
	if err != nil {
		slog.Error("failed to initialize logging", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = logCloser.Close()
	}()

	application := app.New(
		app.WithLogger(slog.Default()),
		app.WithDatabaseOptions(database.Options{
			BusyTimeout:  cfg.Database.BusyTimeout(),
			MaxOpenConns: cfg.Database.MaxOpenConns,
		}),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	// The store is opened once the first client signals front_ready
	cancelTrigger := application.OnFrontReady(ctx, cfg.DataDir)
	defer cancelTrigger()

	go func() {
		select {
		case <-application.SetupDone():
			status, _ := application.SetupStatus()
			if status.Ready() {
				slog.Info("store ready", "data_dir", cfg.DataDir)
			} else {
				slog.Error("store initialization failed", "data_dir", cfg.DataDir, "status", status.Status)
			}
		case <-ctx.Done():
		}
	}()

	server, err := daemon.NewServer(cfg.Daemon.SocketPath, application.TodoService, application.Events(), cfg.Daemon.ClientBuffer)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("lista daemon starting", "socket_path", cfg.Daemon.SocketPath, "data_dir", cfg.DataDir, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("lista daemon shutting down gracefully")
}
