package app

import "fmt"

// StatusLine is the viewer's one-line summary of a simulation. A limit of
// zero or less means the run is unbounded.
func StatusLine(sim Sim, limit int, paused bool) string {
	gen := fmt.Sprintf("Generation %d", sim.Generation())
	if limit > 0 {
		gen = fmt.Sprintf("Generation (%d/%d)", sim.Generation(), limit)
	}
	s := fmt.Sprintf("%s  %s  pop %d", gen, sim.Name(), sim.Grid().Population())
	if paused {
		s += "  [paused]"
	}
	return s
}
