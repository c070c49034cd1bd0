//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"rlelife/pkg/core"
)

// GridPainter keeps one image sized to a grid and redraws it from cells.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
	palette    Palette
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int, palette Palette) *GridPainter {
	return &GridPainter{
		rows:    rows,
		cols:    cols,
		img:     ebiten.NewImage(cols, rows),
		buf:     make([]byte, 4*rows*cols),
		palette: palette,
	}
}

// Blit uploads g into the painter image and draws it scaled onto dst.
// Grids of another size are skipped.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, scale int) {
	if g.Rows != gp.rows || g.Cols != gp.cols {
		return
	}
	if err := gp.palette.Fill(gp.buf, g.Cells()); err != nil {
		return
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the grid dimensions the painter was built for.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
