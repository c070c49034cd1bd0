// Package render turns grids into RGBA pixels for the viewer.
package render

import (
	"fmt"
	"image/color"
)

// Palette maps live and dead cells to colours.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// DefaultPalette draws live cells white on black.
var DefaultPalette = Palette{
	On:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Off: color.RGBA{A: 255},
}

// Fill converts binary cell data into RGBA pixels in buf, which must hold
// four bytes per cell.
func (p Palette) Fill(buf []byte, cells []uint8) error {
	if len(buf) < 4*len(cells) {
		return fmt.Errorf("pixel buffer holds %d bytes, need %d", len(buf), 4*len(cells))
	}
	for i, c := range cells {
		col := p.Off
		if c != 0 {
			col = p.On
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
	return nil
}
