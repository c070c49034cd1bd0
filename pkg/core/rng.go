package core

import (
	"fmt"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Percent reports true with probability percent/100.
func (r *RNG) Percent(percent int) bool {
	return r.r.IntN(100) < percent
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillRandom sets every cell of g alive with probability percent/100.
func FillRandom(g *Grid, percent int, r *RNG) error {
	if percent < 0 || percent > 100 {
		return &ValidationError{Field: "fill_percent", Msg: fmt.Sprintf("%d is outside 0..100", percent)}
	}
	cells := g.Cells()
	for i := range cells {
		cells[i] = Dead
		if r.Percent(percent) {
			cells[i] = Alive
		}
	}
	return nil
}

// RandomGrid allocates a rows x cols grid filled by FillRandom.
func RandomGrid(rows, cols, percent int, seed int64) (*Grid, error) {
	if rows < 1 {
		return nil, &ValidationError{Field: "min_rows", Msg: fmt.Sprintf("%d is below 1", rows)}
	}
	if cols < 1 {
		return nil, &ValidationError{Field: "min_cols", Msg: fmt.Sprintf("%d is below 1", cols)}
	}
	g := NewGrid(rows, cols)
	if err := FillRandom(g, percent, NewRNG(seed)); err != nil {
		return nil, err
	}
	return g, nil
}
