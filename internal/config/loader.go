package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with environment variables
// 3. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides.
// Validation runs once, after the overrides, so a flag can repair a bad
// environment value.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.apply(l.config)
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field leaves the
// loaded value alone.
type ConfigOverrides struct {
	// Database overrides
	DBDriver   *string
	DBDir      *string
	DBFilename *string
	DBDSN      *string
	DBSchema   *string

	// Server overrides
	ServerAddr *string

	// Client overrides
	ClientURL     *string
	ClientTimeout *time.Duration

	// Display overrides
	TimeFormat *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

func (o *ConfigOverrides) apply(config *Config) {
	overrideString(&config.Database.Driver, o.DBDriver)
	overrideString(&config.Database.Dir, o.DBDir)
	overrideString(&config.Database.Filename, o.DBFilename)
	overrideString(&config.Database.DSN, o.DBDSN)
	overrideString(&config.Database.Schema, o.DBSchema)
	overrideString(&config.Server.Addr, o.ServerAddr)
	overrideString(&config.Client.BaseURL, o.ClientURL)
	overrideString(&config.Display.TimeFormat, o.TimeFormat)

	if o.ClientTimeout != nil {
		config.Client.Timeout = *o.ClientTimeout
	}
	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
}

func overrideString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
