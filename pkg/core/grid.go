package core

import "fmt"

// Cell states.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a fixed-size 2D grid of binary cell states in row-major order.
type Grid struct {
	Rows, Cols int
	data       []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// FromRows builds a grid from a rectangular slice of 0/1 rows.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ValidationError{Field: "rows", Msg: "grid must have at least one row and one column"}
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.Cols {
			return nil, &ValidationError{Field: "rows", Msg: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), g.Cols)}
		}
		for c, v := range row {
			if v > Alive {
				return nil, &ValidationError{Field: "rows", Msg: fmt.Sprintf("cell (%d,%d) has state %d", r, c, v)}
			}
			g.data[r*g.Cols+c] = v
		}
	}
	return g, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
// Writers must store only Dead or Alive.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Row returns the cells of a single row as a view into the grid.
func (g *Grid) Row(row int) []uint8 { return g.data[row*g.Cols : (row+1)*g.Cols] }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Alive reports the state of (row, col). Coordinates outside the grid are
// dead; there is no wraparound on either axis.
func (g *Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.data[row*g.Cols+col] == Alive
}

// Set stores the state of (row, col). Out of range coordinates are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	v := Dead
	if alive {
		v = Alive
	}
	g.data[row*g.Cols+col] = v
}

// LiveNeighbors counts the live cells among the eight neighbours of
// (row, col), treating everything past the edges as dead.
func (g *Grid) LiveNeighbors(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.Alive(row+dr, col+dc) {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: append([]uint8(nil), g.data...)}
}

// CopyFrom overwrites g with the cells of src. Both grids must share dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.Rows != src.Rows || g.Cols != src.Cols {
		panic(fmt.Sprintf("core: CopyFrom %dx%d into %dx%d", src.Rows, src.Cols, g.Rows, g.Cols))
	}
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Crop returns a copy of the rectangle described by b.
func (g *Grid) Crop(b Box) *Grid {
	out := NewGrid(b.Height(), b.Width())
	for r := b.Top; r <= b.Bottom; r++ {
		copy(out.Row(r-b.Top), g.data[r*g.Cols+b.MinCol:r*g.Cols+b.MaxCol+1])
	}
	return out
}

// String renders the grid with 'o' for live and '.' for dead cells, one row
// per line.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.Rows*(g.Cols+1))
	for r := 0; r < g.Rows; r++ {
		for _, v := range g.Row(r) {
			if v == Alive {
				buf = append(buf, 'o')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
