// Package life advances binary grids under birth/survival rules.
//
// Every generation is computed from an untouched snapshot of the previous one
// and written into a separate buffer, so the order in which cells (or rows,
// when running with several workers) are visited never affects the result.
// Cells beyond the grid edges count as dead.
package life

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rlelife/internal/ctxlog"
	"rlelife/pkg/core"
	"rlelife/pkg/rule"
)

// Step returns the generation following g. g is not modified.
func Step(g *core.Grid, rules rule.Set) *core.Grid {
	next := core.NewGrid(g.Rows, g.Cols)
	stepRows(next, g, rules, 0, g.Rows)
	return next
}

// Run returns the grid n generations after g. For n <= 0 it returns g itself.
func Run(g *core.Grid, rules rule.Set, n int) *core.Grid {
	if n <= 0 {
		return g
	}
	e := New(g, rules)
	for i := 0; i < n; i++ {
		e.Step()
	}
	return e.cur
}

// Observer receives each committed generation. The grid is a read-only view
// that stays valid only until the observer returns; clone it to keep it.
// Returning an error stops the run.
type Observer func(gen int, g *core.Grid) error

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers splits every generation into row bands computed concurrently.
// Values below 1 mean a single worker.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

// Engine owns a double-buffered grid and advances it one generation at a time.
type Engine struct {
	rules   rule.Set
	cur     *core.Grid
	nxt     *core.Grid
	gen     int
	workers int
}

// New returns an Engine starting from a copy of g.
func New(g *core.Grid, rules rule.Set, opts ...Option) *Engine {
	e := &Engine{rules: rules, workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset(g)
	return e
}

// Name returns the canonical rule string.
func (e *Engine) Name() string { return e.rules.String() }

// Rules returns the rule set in use.
func (e *Engine) Rules() rule.Set { return e.rules }

// Grid exposes the current generation. Callers must not modify it.
func (e *Engine) Grid() *core.Grid { return e.cur }

// Snapshot returns a copy of the current generation.
func (e *Engine) Snapshot() *core.Grid { return e.cur.Clone() }

// Generation returns how many steps have been applied since the last Reset.
func (e *Engine) Generation() int { return e.gen }

// Reset replaces the current state with a copy of g and rewinds the
// generation counter.
func (e *Engine) Reset(g *core.Grid) {
	e.cur = g.Clone()
	if e.nxt == nil || e.nxt.Rows != g.Rows || e.nxt.Cols != g.Cols {
		e.nxt = core.NewGrid(g.Rows, g.Cols)
	}
	e.gen = 0
}

// Step advances the simulation by one generation.
func (e *Engine) Step() {
	if e.workers <= 1 || e.cur.Rows < 2 {
		stepRows(e.nxt, e.cur, e.rules, 0, e.cur.Rows)
	} else {
		e.stepParallel()
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.gen++
}

func (e *Engine) stepParallel() {
	rows := e.cur.Rows
	band := (rows + e.workers - 1) / e.workers
	var eg errgroup.Group
	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		eg.Go(func() error {
			stepRows(e.nxt, e.cur, e.rules, start, end)
			return nil
		})
	}
	// Bands write disjoint rows of nxt; Wait is the generation barrier.
	_ = eg.Wait()
}

// Run applies n generations, reporting the starting generation and then each
// committed one to obs (which may be nil). Cancellation of ctx is checked
// between generations; a generation in progress always completes.
func (e *Engine) Run(ctx context.Context, n int, obs Observer) error {
	log := ctxlog.FromContext(ctx)
	log.Info("simulation started",
		"rule", e.rules.String(),
		"rows", e.cur.Rows,
		"cols", e.cur.Cols,
		"generations", n,
		"workers", e.workers)

	if obs != nil {
		if err := obs(e.gen, e.cur); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			log.Info("simulation cancelled", "generation", e.gen)
			return err
		}
		e.Step()
		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug("generation committed", "generation", e.gen, "population", e.cur.Population())
		}
		if obs != nil {
			if err := obs(e.gen, e.cur); err != nil {
				return err
			}
		}
	}
	log.Info("simulation finished", "generation", e.gen, "population", e.cur.Population())
	return nil
}

// stepRows writes rows [from, to) of the generation after src into dst.
func stepRows(dst, src *core.Grid, rules rule.Set, from, to int) {
	out := dst.Cells()
	for r := from; r < to; r++ {
		for c := 0; c < src.Cols; c++ {
			v := core.Dead
			if rules.Next(src.Alive(r, c), src.LiveNeighbors(r, c)) {
				v = core.Alive
			}
			out[dst.Index(r, c)] = v
		}
	}
}
