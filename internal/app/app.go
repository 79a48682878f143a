package app

import (
	"io"
	"log/slog"

	"github.com/vk/flowpat/internal/emit"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	emitter emit.Emitter
}

// NewApp is the constructor for the main application. Messages meant for
// the user go to outW, logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	emitter, err := emit.New(cfg.Format, cfg.Guard)
	if err != nil {
		return nil, err
	}
	logger.Debug("Emitter selected.", "format", cfg.Format, "guard", cfg.Guard)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		emitter: emitter,
	}, nil
}
