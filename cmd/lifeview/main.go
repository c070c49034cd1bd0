//go:build ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"rlelife/internal/app"
	"rlelife/internal/cli"
	"rlelife/internal/ctxlog"
)

const summary = "Shows a B/S cellular automaton evolving in a window."

func main() {
	cfg, shouldExit, err := cli.Parse("lifeview", summary, os.Args[1:], os.Stdout)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if shouldExit {
		return
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	slog.SetDefault(logger)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	setup, err := app.Prepare(ctx, cfg)
	if err != nil {
		logger.Error("setup failed", "error", err)
		os.Exit(1)
	}
	engine := setup.NewEngine(cfg)
	game := app.NewGame(engine, setup.Initial, cfg.Scale, cfg.FPS, cfg.Generations)

	w, h := game.WindowSize()
	ebiten.SetWindowTitle("lifeview: " + engine.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
