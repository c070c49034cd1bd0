package app

import (
	"rlelife/pkg/core"
	"rlelife/pkg/sims/life"
)

// Sim is the view of a running simulation the viewer needs.
type Sim interface {
	Name() string
	Grid() *core.Grid
	Generation() int
	Step()
	Reset(g *core.Grid)
}

var _ Sim = (*life.Engine)(nil)
