package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vk/flowpat/internal/emit"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string
	OutputPath string

	Format string // one of emit.Formats()
	Guard  string // include guard, derived from OutputPath when empty, sanitized otherwise
	Strict bool   // fail the run on malformed input instead of only reporting it

	LogFormat string
	LogLevel  string
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// NewConfig validates cfg and fills in derived defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("OutputPath is a required configuration field and cannot be empty")
	}

	if cfg.Format == "" {
		cfg.Format = emit.FormatC
	}
	if !slices.Contains(emit.Formats(), cfg.Format) {
		return nil, fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, emit.Formats())
	}
	if cfg.Guard == "" {
		cfg.Guard = emit.Guard(cfg.OutputPath)
	} else {
		cfg.Guard = emit.SanitizeGuard(cfg.Guard)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
