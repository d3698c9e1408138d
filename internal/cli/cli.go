package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/thenoetrevino/lista/internal/app"
	"github.com/thenoetrevino/lista/internal/cli/styles"
	"github.com/thenoetrevino/lista/internal/config"
	"github.com/thenoetrevino/lista/internal/database"
	"github.com/thenoetrevino/lista/internal/logging"
)

// bootTimeout bounds the front-ready handshake
const bootTimeout = 10 * time.Second

// ConfigPath overrides the default config file location when set
var ConfigPath string

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	logCloser io.Closer
	owned     bool // App was created here and must be closed here
}

// NewCLI loads configuration, boots the store and returns a ready CLI.
// A store that reports anything other than ready is an initialization error.
func NewCLI(ctx context.Context) (*CLI, error) {
	var cfg *config.Config
	var err error
	if ConfigPath != "" {
		cfg, err = config.LoadFile(ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	styles.Init(cfg.Theme)

	logCloser, err := logging.Init(cfg.LogDir(), cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application := app.New(
		app.WithLogger(slog.Default()),
		app.WithDatabaseOptions(database.Options{
			BusyTimeout:  cfg.Database.BusyTimeout(),
			MaxOpenConns: cfg.Database.MaxOpenConns,
		}),
	)

	c := &CLI{App: application, logCloser: logCloser, owned: true}

	bootCtx, cancel := context.WithTimeout(ctx, bootTimeout)
	defer cancel()

	status, err := application.Boot(bootCtx, cfg.DataDir)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if !status.Ready() {
		_ = c.Close()
		return nil, fmt.Errorf("failed to initialize database: %s", status.Status)
	}

	return c, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	var err error
	if c.owned {
		err = c.App.Close()
	}
	if c.logCloser != nil {
		if closeErr := c.logCloser.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
