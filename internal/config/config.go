package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig
	Server      ServerConfig
	Client      ClientConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver         string `env:"TODO_DB_DRIVER"`
	Dir            string `env:"TODO_DB_DIR"`
	Filename       string `env:"TODO_DB_FILENAME"`
	DSN            string `env:"TODO_DB_DSN"`
	Schema         string `env:"TODO_DB_SCHEMA"`
	DirPermissions uint32 `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ServerConfig holds the RPC server settings
type ServerConfig struct {
	Addr            string        `env:"TODO_SERVER_ADDR"`
	ReadTimeout     time.Duration `env:"TODO_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"TODO_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
}

// ClientConfig holds the settings used by the CLI and TUI to reach the server
type ClientConfig struct {
	BaseURL string        `env:"TODO_CLIENT_URL"`
	Timeout time.Duration `env:"TODO_CLIENT_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TODO_TIME_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Driver:         DriverSQLite,
			Dir:            filepath.Join(homeDir, ".todo"),
			Filename:       "todo.db",
			Schema:         "public",
			DirPermissions: 0755,
		},
		Server: ServerConfig{
			Addr:            "localhost:3000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 10 * time.Second,
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from TODO_* environment variables.
// A variable that is set but cannot be parsed is reported as a ConfigError.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	setString("TODO_DB_DRIVER", &c.Database.Driver)
	setString("TODO_DB_DIR", &c.Database.Dir)
	setString("TODO_DB_FILENAME", &c.Database.Filename)
	setString("TODO_DB_DSN", &c.Database.DSN)
	setString("TODO_DB_SCHEMA", &c.Database.Schema)
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		p, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return envError("TODO_DB_DIR_PERMISSIONS", perms, err)
		}
		c.Database.DirPermissions = uint32(p)
	}

	// Server configuration
	setString("TODO_SERVER_ADDR", &c.Server.Addr)
	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"TODO_SERVER_READ_TIMEOUT", &c.Server.ReadTimeout},
		{"TODO_SERVER_WRITE_TIMEOUT", &c.Server.WriteTimeout},
		{"TODO_SERVER_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout},
		{"TODO_CLIENT_TIMEOUT", &c.Client.Timeout},
		{"TODO_APP_TIMEOUT", &c.Application.Timeout},
	}
	for _, d := range durations {
		if err := setDuration(d.name, d.dst); err != nil {
			return err
		}
	}

	// Client configuration
	setString("TODO_CLIENT_URL", &c.Client.BaseURL)

	// Display configuration
	setString("TODO_TIME_FORMAT", &c.Display.TimeFormat)

	// Application configuration
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		b, err := strconv.ParseBool(verbose)
		if err != nil {
			return envError("TODO_APP_VERBOSE", verbose, err)
		}
		c.Application.Verbose = b
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return &ConfigError{Field: "database.dsn", Message: "a DSN is required for the postgres driver"}
		}
		if c.Database.Schema == "" {
			return &ConfigError{Field: "database.schema", Message: "schema cannot be empty"}
		}
	default:
		return &ConfigError{Field: "database.driver", Message: fmt.Sprintf("unsupported driver %q", c.Database.Driver)}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return &ConfigError{Field: "server.timeouts", Message: "server timeouts cannot be negative"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}

	// Validate client configuration
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "client.base_url", Message: "base URL must be an absolute http(s) URL"}
	}
	if c.Client.Timeout <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

func setString(name string, dst *string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

func setDuration(name string, dst *time.Duration) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return envError(name, v, err)
	}
	*dst = d
	return nil
}

func envError(name, value string, err error) error {
	return &ConfigError{Field: name, Message: fmt.Sprintf("invalid value %q: %v", value, err)}
}
