package core

// ExpandToSize returns g padded with dead cells so that it has at least
// minRows rows and minCols columns. Dimensions already at or above the minimum
// are kept. Padding alternates between the trailing and the leading edge, so
// an odd deficit leaves the extra row or column at the bottom or right.
//
// When no padding is needed g itself is returned.
func ExpandToSize(g *Grid, minRows, minCols int) *Grid {
	extraRows := max(minRows-g.Rows, 0)
	extraCols := max(minCols-g.Cols, 0)
	if extraRows == 0 && extraCols == 0 {
		return g
	}

	top := extraRows / 2
	left := extraCols / 2
	out := NewGrid(g.Rows+extraRows, g.Cols+extraCols)
	for r := 0; r < g.Rows; r++ {
		dst := out.Row(r + top)
		copy(dst[left:left+g.Cols], g.Row(r))
	}
	return out
}
