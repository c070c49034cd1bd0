package app

import (
	"context"
	"fmt"
	"os"

	"rlelife/internal/config"
	"rlelife/internal/ctxlog"
	"rlelife/pkg/core"
	"rlelife/pkg/rle"
	"rlelife/pkg/rule"
	"rlelife/pkg/sims/life"
)

// Setup is the starting point of a run: the padded initial generation and
// the rule it evolves under.
type Setup struct {
	Initial  *core.Grid
	Rules    rule.Set
	Comments []string
}

// Prepare builds the initial generation from cfg. With an input pattern the
// pattern is decoded and its rule used unless cfg.Rule overrides it;
// otherwise a random MinRows x MinCols grid is generated. Either way the grid
// is then padded to at least MinRows x MinCols.
func Prepare(ctx context.Context, cfg *config.Run) (*Setup, error) {
	log := ctxlog.FromContext(ctx)
	s := &Setup{}
	ruleText := cfg.Rule

	var grid *core.Grid
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("opening pattern: %w", err)
		}
		defer f.Close()
		p, err := rle.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", cfg.Input, err)
		}
		grid = p.Grid
		s.Comments = p.Comments
		if ruleText == "" {
			ruleText = p.Rule
		}
		log.Info("pattern loaded", "path", cfg.Input, "rows", grid.Rows, "cols", grid.Cols, "rule", p.Rule)
	} else {
		var err error
		grid, err = core.RandomGrid(cfg.MinRows, cfg.MinCols, cfg.FillPercent, cfg.Seed)
		if err != nil {
			return nil, err
		}
		log.Info("random grid generated", "rows", grid.Rows, "cols", grid.Cols, "fill_percent", cfg.FillPercent, "seed", cfg.Seed)
	}

	if ruleText == "" {
		s.Rules = rule.Life
	} else {
		rules, err := rule.Lookup(ruleText)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", ruleText, err)
		}
		s.Rules = rules
	}

	s.Initial = core.ExpandToSize(grid, cfg.MinRows, cfg.MinCols)
	if s.Initial != grid {
		log.Debug("grid padded", "rows", s.Initial.Rows, "cols", s.Initial.Cols)
	}
	return s, nil
}

// NewEngine starts an engine from the setup's initial generation.
func (s *Setup) NewEngine(cfg *config.Run) *life.Engine {
	return life.New(s.Initial, s.Rules, life.WithWorkers(cfg.Workers))
}
