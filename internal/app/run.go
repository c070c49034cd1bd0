package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"rlelife/internal/config"
	"rlelife/internal/ctxlog"
	"rlelife/pkg/core"
	"rlelife/pkg/rle"
)

// progressSteps is how many progress lines a long run logs.
const progressSteps = 10

// Summary describes a finished headless run.
type Summary struct {
	Generations    int
	Population     int
	PeakPopulation int
	PeakGeneration int
	// ExtinctAt is the first generation with no live cells, or -1.
	ExtinctAt int
}

// Simulate runs cfg headlessly. The initial generation is optionally saved to
// cfg.SaveInitial and the final generation is written as RLE to cfg.Output,
// or to stdout when no output path is set. A generation with no live cells
// has no RLE form; it is logged and nothing is written for it.
func Simulate(ctx context.Context, cfg *config.Run, stdout io.Writer) (*Summary, error) {
	log := ctxlog.FromContext(ctx)

	setup, err := Prepare(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ruleText := setup.Rules.String()

	if cfg.SaveInitial != "" {
		p := &rle.Pattern{Grid: setup.Initial, Rule: ruleText, Comments: setup.Comments}
		if err := writePattern(ctx, cfg.SaveInitial, nil, p); err != nil {
			return nil, fmt.Errorf("saving initial generation: %w", err)
		}
	}

	sum := &Summary{ExtinctAt: -1}
	every := max(cfg.Generations/progressSteps, 1)
	engine := setup.NewEngine(cfg)
	err = engine.Run(ctx, cfg.Generations, func(gen int, g *core.Grid) error {
		pop := g.Population()
		if pop > sum.PeakPopulation || gen == 0 {
			sum.PeakPopulation, sum.PeakGeneration = pop, gen
		}
		if pop == 0 && sum.ExtinctAt < 0 {
			sum.ExtinctAt = gen
			log.Info("population extinct", "generation", gen)
		}
		if gen > 0 && gen%every == 0 && cfg.Generations >= progressSteps {
			log.Info("progress", "generation", gen, "of", cfg.Generations, "population", pop)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sum.Generations = engine.Generation()
	sum.Population = engine.Grid().Population()

	final := &rle.Pattern{Grid: engine.Grid(), Rule: ruleText}
	if err := writePattern(ctx, cfg.Output, stdout, final); err != nil {
		return nil, fmt.Errorf("writing final generation: %w", err)
	}
	return sum, nil
}

// writePattern encodes p to path, or to fallback when path is empty. The
// document is encoded in full before anything is created or written.
func writePattern(ctx context.Context, path string, fallback io.Writer, p *rle.Pattern) error {
	var buf bytes.Buffer
	err := rle.EncodePattern(&buf, p)
	if errors.Is(err, core.ErrEmptyPattern) {
		ctxlog.FromContext(ctx).Warn("grid has no live cells, nothing written", "path", path)
		return nil
	}
	if err != nil {
		return err
	}
	if path == "" {
		if fallback == nil {
			return nil
		}
		_, err = fallback.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
