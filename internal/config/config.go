package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const appName = "lista"

// Config represents the application configuration
type Config struct {
	// DataDir holds the database file and logs
	DataDir  string         `yaml:"data_dir" validate:"required"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Daemon   DaemonConfig   `yaml:"daemon"`
	Theme    ColorScheme    `yaml:"theme"`
}

// DatabaseConfig tunes the SQLite connection pool
type DatabaseConfig struct {
	BusyTimeoutMs int `yaml:"busy_timeout_ms" validate:"min=1"`
	MaxOpenConns  int `yaml:"max_open_conns" validate:"min=1"`
}

// BusyTimeout returns the busy timeout as a duration
func (d DatabaseConfig) BusyTimeout() time.Duration {
	return time.Duration(d.BusyTimeoutMs) * time.Millisecond
}

// LogConfig controls the slog handler
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
}

// DaemonConfig controls the socket server
type DaemonConfig struct {
	SocketPath   string `yaml:"socket_path" validate:"required"`
	ClientBuffer int    `yaml:"client_buffer" validate:"min=1"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if the file doesn't exist. Environment variables
// (optionally from a .env file in the working directory) override file values.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return LoadFile("")
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. An empty path or missing file yields defaults.
func LoadFile(path string) (*Config, error) {
	// A missing .env is the common case
	_ = godotenv.Load()

	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
		default:
			return nil, err
		}
	}

	config.applyEnv()
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(configPath)
}

// SaveFile writes the config as YAML to path, creating parent directories
func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the default config file location
func Path() (string, error) {
	return getConfigPath()
}

var validate = validator.New()

// Validate checks the configuration after defaults have been applied
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogDir returns the directory log files are written to
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName, "config.yaml"), nil
}

// defaultDataDir mirrors the per-user application data directory
func defaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(homeDir, ".local", "share", appName)
}

// applyEnv overrides values from LISTA_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("LISTA_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("LISTA_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LISTA_SOCKET_PATH"); v != "" {
		c.Daemon.SocketPath = v
	}
	if v := os.Getenv("LISTA_BUSY_TIMEOUT_MS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Database.BusyTimeoutMs = parsed
		}
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	if c.Database.BusyTimeoutMs <= 0 {
		c.Database.BusyTimeoutMs = 5000
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 4
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Daemon.SocketPath == "" {
		c.Daemon.SocketPath = filepath.Join(c.DataDir, appName+".sock")
	}
	if c.Daemon.ClientBuffer <= 0 {
		c.Daemon.ClientBuffer = 10
	}
	c.Theme.ApplyDefaults()
}
