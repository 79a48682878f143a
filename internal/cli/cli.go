package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/shlex"
	"github.com/vk/flowpat/internal/app"
	"github.com/vk/flowpat/internal/ctxlog"
	"github.com/vk/flowpat/internal/emit"
	"github.com/vk/flowpat/internal/hclconfig"
)

// EnvFlags names the environment variable holding default flags.
const EnvFlags = "FLOWPAT_FLAGS"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// WithEnvFlags splits envValue shell-style and prepends the result to args,
// so flags given on the command line override the defaults.
func WithEnvFlags(envValue string, args []string) ([]string, error) {
	if strings.TrimSpace(envValue) == "" {
		return args, nil
	}
	extra, err := shlex.Split(envValue)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: %v", EnvFlags, err)}
	}
	return append(extra, args...), nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("flowpat", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
flowpat - converts LED light-pattern descriptions into a firmware header.

Usage:
  flowpat [options] <infile> <outfile>

Arguments:
  infile
    Pattern file, one pattern per line: time|value,diode[,diode...][/time|...]
  outfile
    Generated artifact. Its base name also names the include guard.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	formatFlag := flagSet.String("format", emit.FormatC, "Output format. Options: "+strings.Join(emit.Formats(), ", ")+".")
	guardFlag := flagSet.String("guard", "", "Include guard for the C header. Derived from outfile when empty.")
	strictFlag := flagSet.Bool("strict", false, "Exit with an error status when the input contains malformed numbers.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() < 2 {
		slog.Debug("Input or output path missing, printing usage.", "args", flagSet.Args())
		flagSet.Usage()
		return nil, false, &ExitError{Code: 1, Message: "missing <infile> or <outfile>"}
	}

	cfg := app.Config{
		InputPath:  flagSet.Arg(0),
		OutputPath: flagSet.Arg(1),
	}

	if *configFlag != "" {
		ctx := ctxlog.WithLogger(context.Background(), slog.Default())
		file, err := hclconfig.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFile(&cfg, file)
		slog.Debug("Config file applied.", "path", *configFlag)
	}

	// Flags set explicitly on the command line win over the config file.
	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	override := func(name string, dst *string, val string) {
		if explicit[name] || *dst == "" {
			*dst = val
		}
	}
	override("format", &cfg.Format, strings.ToLower(*formatFlag))
	override("log-format", &cfg.LogFormat, strings.ToLower(*logFormatFlag))
	override("log-level", &cfg.LogLevel, strings.ToLower(*logLevelFlag))
	if explicit["guard"] {
		cfg.Guard = *guardFlag
	}
	if explicit["strict"] {
		cfg.Strict = *strictFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func applyFile(cfg *app.Config, file *hclconfig.File) {
	if file.Strict != nil {
		cfg.Strict = *file.Strict
	}
	if out := file.Output; out != nil {
		if out.Format != nil {
			cfg.Format = strings.ToLower(*out.Format)
		}
		if out.Guard != nil {
			cfg.Guard = *out.Guard
		}
	}
	if l := file.Log; l != nil {
		if l.Level != nil {
			cfg.LogLevel = strings.ToLower(*l.Level)
		}
		if l.Format != nil {
			cfg.LogFormat = strings.ToLower(*l.Format)
		}
	}
}
