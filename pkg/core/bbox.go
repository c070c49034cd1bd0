package core

// Box is an inclusive rectangle of grid coordinates.
type Box struct {
	Top, Bottom    int
	MinCol, MaxCol int
}

// Width returns the number of columns covered by the box.
func (b Box) Width() int { return b.MaxCol - b.MinCol + 1 }

// Height returns the number of rows covered by the box.
func (b Box) Height() int { return b.Bottom - b.Top + 1 }

// BoundingBox returns the smallest box enclosing every live cell of g. It
// returns ErrEmptyPattern when g has no live cells.
func BoundingBox(g *Grid) (Box, error) {
	top := -1
	for r := 0; r < g.Rows; r++ {
		if rowHasLife(g.Row(r)) {
			top = r
			break
		}
	}
	if top < 0 {
		return Box{}, ErrEmptyPattern
	}
	bottom := top
	for r := g.Rows - 1; r > top; r-- {
		if rowHasLife(g.Row(r)) {
			bottom = r
			break
		}
	}

	b := Box{Top: top, Bottom: bottom, MinCol: g.Cols, MaxCol: -1}
	for r := top; r <= bottom; r++ {
		for c, v := range g.Row(r) {
			if v != Alive {
				continue
			}
			if c < b.MinCol {
				b.MinCol = c
			}
			if c > b.MaxCol {
				b.MaxCol = c
			}
		}
		if b.MinCol == 0 && b.MaxCol == g.Cols-1 {
			break
		}
	}
	return b, nil
}

func rowHasLife(row []uint8) bool {
	for _, v := range row {
		if v == Alive {
			return true
		}
	}
	return false
}
