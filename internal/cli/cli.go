// Package cli turns command-line arguments into a validated run configuration.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"rlelife/internal/config"
	"rlelife/pkg/rule"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments for the named program. It returns
// the validated configuration, a boolean telling the caller to exit cleanly
// (help was requested), or an *ExitError.
//
// Flags are parsed twice: the first pass only locates -config, whose YAML
// values then become the defaults of the second pass, so explicit flags
// always win over the file.
func Parse(name, summary string, args []string, output io.Writer) (*config.Run, bool, error) {
	slog.Debug("CLI parser started.", "program", name)

	probe := config.Default()
	fs, configPath := newFlagSet(name, summary, &probe, output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Configuration file loaded.", "path", *configPath)
	}

	fs, _ = newFlagSet(name, summary, &cfg, io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one pattern file, got %d arguments", fs.NArg())}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}

func newFlagSet(name, summary string, cfg *config.Run, output io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, `
%s - %s

Usage:
  %s [options] [PATTERN.rle]

Arguments:
  PATTERN.rle
    RLE pattern to start from. Without it a random grid of
    rows x cols cells with the given fill percentage is used.

Rule presets: %s

Options:
`, name, summary, name, strings.Join(rule.Presets(), ", "))
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "YAML file with run settings; flags override it")
	cfg.Bind(fs)
	return fs, configPath
}
