package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/vk/flowpat/internal/ctxlog"
	"github.com/vk/flowpat/internal/pattern"
)

// Run converts the input file into the output artifact.
//
// The output file is created before parsing starts and is left empty when
// the input holds a malformed number. That failure is reported on outW and,
// unless Strict is set, Run still returns nil so the process exits cleanly.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "output", a.config.OutputPath)

	in, err := os.Open(a.config.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	table, err := pattern.Parse(in)
	if err != nil {
		if !errors.Is(err, pattern.ErrMalformedNumber) {
			return err
		}
		a.reportParseError(err)
		if a.config.Strict {
			return fmt.Errorf("conversion failed: %w", err)
		}
		a.logger.Warn("Input rejected, output left empty.", "output", a.config.OutputPath)
		return nil
	}
	a.logger.Debug("Input parsed.",
		"patterns", len(table.Patterns),
		"frames", len(table.Frames),
		"instructions", len(table.Instructions),
	)
	a.logPatterns(ctx, table)

	if err := a.emitter.Emit(out, table); err != nil {
		return fmt.Errorf("failed to write %s output: %w", a.config.Format, err)
	}

	a.logger.Info("Patterns converted.", "output", a.config.OutputPath, "format", a.config.Format, "patterns", len(table.Patterns))
	return nil
}

func (a *App) reportParseError(err error) {
	fmt.Fprintln(a.outW, "ERROR: not integer values found")
	fmt.Fprintln(a.outW, "exception:")
	fmt.Fprintln(a.outW, err)
}

// logPatterns logs every pattern in its canonical input form.
func (a *App) logPatterns(ctx context.Context, table *pattern.Table) {
	if !a.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	for i, p := range table.Patterns {
		a.logger.DebugContext(ctx, "Pattern parsed.", "index", i, "frames", p.FrameCount, "line", pattern.FormatLine(table, p))
	}
}
