//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"rlelife/internal/render"
	"rlelife/pkg/core"
)

const statusBarHeight = 18

// Game adapts a simulation to the ebiten.Game interface.
type Game struct {
	sim     Sim
	initial *core.Grid
	painter *render.GridPainter
	timer   *FixedStep

	scale    int
	limit    int
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game stepping sim fps times per second until limit
// generations have been shown. initial is restored on reset.
func NewGame(sim Sim, initial *core.Grid, scale, fps, limit int) *Game {
	g := sim.Grid()
	return &Game{
		sim:     sim,
		initial: initial.Clone(),
		painter: render.NewGridPainter(g.Rows, g.Cols, render.DefaultPalette),
		timer:   NewFixedStep(fps),
		scale:   max(scale, 1),
		limit:   limit,
	}
}

// WindowSize is the window size that shows every cell at the game's scale.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.timer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.initial)
		g.timer.Reset()
		g.tickOnce = false
	}

	if g.limit > 0 && g.sim.Generation() >= g.limit {
		g.tickOnce = false
		return nil
	}
	if g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.timer.Ready() {
		g.sim.Step()
	}
	return nil
}

// Draw renders the grid and the status bar beneath it.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.scale)
	_, h := g.Layout(0, 0)
	text.Draw(screen, StatusLine(g.sim, g.limit, g.paused), basicfont.Face7x13, 4, h-5, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	rows, cols := g.painter.Size()
	return cols * g.scale, rows*g.scale + statusBarHeight
}
