// Package config provides configuration for the tabledom driver binary.
// Settings come from environment variables (with .env support) and are
// validated on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Document DocumentConfig
	Logging  LoggingConfig
}

// DocumentConfig locates the HTML document and the table inside it.
type DocumentConfig struct {
	// Path is the HTML file to load (required)
	Path string `env:"TABLEDOM_DOCUMENT" required:"true"`

	// Table is the id of the table element inside the document (required)
	Table string `env:"TABLEDOM_TABLE" required:"true"`

	// Output is where the mutated document is saved; defaults to Path
	Output string `env:"TABLEDOM_OUTPUT"`
}

// LoggingConfig holds log sink settings.
type LoggingConfig struct {
	// SeqURL is the Seq ingestion endpoint; empty disables the Seq sink
	SeqURL string `env:"TABLEDOM_SEQ_URL"`

	// Level is the minimum log level: debug, info, warn or error
	Level string `env:"TABLEDOM_LOG_LEVEL" default:"info"`
}

// Validate checks cross-field constraints and normalizes defaults.
func (c *Config) Validate() error {
	if c.Document.Output == "" {
		c.Document.Output = c.Document.Path
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name onto slog's levels.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", l.Level)
	}
}
