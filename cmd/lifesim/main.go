package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"rlelife/internal/app"
	"rlelife/internal/cli"
	"rlelife/internal/ctxlog"
)

const summary = "Runs a B/S cellular automaton headlessly and prints the final generation as RLE."

// main is the entrypoint for the headless simulator.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, simulates, and writes RLE to outW and logs to logW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse("lifesim", summary, args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sum, err := app.Simulate(ctx, cfg, outW)
	if err != nil {
		return err
	}
	logger.Info("run complete",
		"generations", sum.Generations,
		"population", sum.Population,
		"peak_population", sum.PeakPopulation,
		"peak_generation", sum.PeakGeneration,
		"extinct_at", sum.ExtinctAt)
	return nil
}
