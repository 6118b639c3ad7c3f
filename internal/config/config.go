// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Config controls logging, request limits and image caching.
//
// Every field is read from an IMAGE_CORE_ environment variable; command-line
// flags override the values after loading.
type Config struct {
	LogLevel        string `env:"IMAGE_CORE_LOG_LEVEL"         envDefault:"info"`
	MaxRequestBytes int    `env:"IMAGE_CORE_MAX_REQUEST_BYTES" envDefault:"1048576"`
	CacheSize       int    `env:"IMAGE_CORE_CACHE_SIZE"        envDefault:"0"`
}

// Parse reads the environment into a Config without validating it, so
// callers can apply overrides first.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.MaxRequestBytes < 1024 {
		return fmt.Errorf("max request bytes must be at least 1024, got %d", c.MaxRequestBytes)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// NewLogger builds the process logger. It writes to stderr because stdout
// carries protocol traffic.
func (c Config) NewLogger() *log.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is NewLogger writing to w.
func (c Config) LoggerTo(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "image-core",
		Level:           c.Level(),
		ReportTimestamp: true,
	})
}
