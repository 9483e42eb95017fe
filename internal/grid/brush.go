package grid

// Brush is a square multi-cell write centered on a cell.
type Brush struct {
	Row, Col int
	Size     int // side length; even sizes paint like the next lower odd size
	Value    int
}

// Radius returns (Size-1)/2.
func (b Brush) Radius() int { return (b.Size - 1) / 2 }

// Apply writes b.Value into every in-bounds cell of the brush square and
// returns how many cells were written. Cells outside the grid are skipped,
// never wrapped onto a neighbouring row.
func (g *Grid) Apply(b Brush) int {
	if b.Size < 1 {
		return 0
	}
	r := b.Radius()
	r0, r1 := max(b.Row-r, 0), min(b.Row+r, g.rows-1)
	c0, c1 := max(b.Col-r, 0), min(b.Col+r, g.cols-1)
	n := 0
	for row := r0; row <= r1; row++ {
		base := row * g.cols
		for col := c0; col <= c1; col++ {
			g.cells[base+col] = b.Value
			n++
		}
	}
	return n
}

// ApplyBrush is Apply for a brush given by its parts.
func (g *Grid) ApplyBrush(row, col, size, value int) int {
	return g.Apply(Brush{Row: row, Col: col, Size: size, Value: value})
}
