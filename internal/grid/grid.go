package grid

import (
	"fmt"
	"slices"
)

// Empty is the cell value of an unpainted tile.
const Empty = 0

// Grid is a rows × cols field of tile values stored row-major in one slice,
// addressed by row*cols + col.
type Grid struct {
	rows, cols int
	tileSize   int
	cells      []int
}

// New creates a grid of empty tiles.
func New(rows, cols, tileSize int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, tileSize)
	}
	g := &Grid{tileSize: tileSize}
	if err := g.Resize(rows, cols, Empty); err != nil {
		return nil, err
	}
	return g, nil
}

// Fit creates the largest grid of tileSize tiles that fits a width × height
// pixel area.
func Fit(width, height, tileSize int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, tileSize)
	}
	return New(height/tileSize, width/tileSize, tileSize)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns the side of one tile in pixels.
func (g *Grid) TileSize() int { return g.tileSize }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// Cells returns a copy of the backing values in row-major order.
func (g *Grid) Cells() []int { return slices.Clone(g.cells) }

// Resize reallocates the grid to rows × cols cells set to def. The old
// buffer is never reused.
func (g *Grid) Resize(rows, cols, def int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	cells := make([]int, rows*cols)
	if def != Empty {
		for i := range cells {
			cells[i] = def
		}
	}
	g.rows, g.cols, g.cells = rows, cols, cells
	return nil
}

// SetTileSize changes the tile size and refits the grid to a width × height
// pixel area. Every cell is reset.
func (g *Grid) SetTileSize(tileSize, width, height int) error {
	if tileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, tileSize)
	}
	if err := g.Resize(height/tileSize, width/tileSize, Empty); err != nil {
		return err
	}
	g.tileSize = tileSize
	return nil
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear index of (row, col).
func (g *Grid) Index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}
	return row*g.cols + col, nil
}

// Get returns the value at (row, col).
func (g *Grid) Get(row, col int) (int, error) {
	i, err := g.Index(row, col)
	if err != nil {
		return 0, err
	}
	return g.cells[i], nil
}

// Set writes v at (row, col).
func (g *Grid) Set(row, col, v int) error {
	i, err := g.Index(row, col)
	if err != nil {
		return err
	}
	g.cells[i] = v
	return nil
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() { clear(g.cells) }

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// FillFirstEmpty writes v into the first empty cell in row-major order. It
// reports false when the grid is full.
func (g *Grid) FillFirstEmpty(v int) bool {
	i := slices.Index(g.cells, Empty)
	if i < 0 {
		return false
	}
	g.cells[i] = v
	return true
}

// Painted counts non-empty cells.
func (g *Grid) Painted() int {
	n := 0
	for _, v := range g.cells {
		if v != Empty {
			n++
		}
	}
	return n
}

// CellAt converts a pixel position relative to the grid origin to a cell.
func (g *Grid) CellAt(x, y int) (row, col int, ok bool) {
	if g.tileSize <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	row, col = y/g.tileSize, x/g.tileSize
	return row, col, g.InBounds(row, col)
}

// Equal reports whether both grids have the same shape, tile size and
// values.
func (g *Grid) Equal(o *Grid) bool {
	return g.rows == o.rows && g.cols == o.cols && g.tileSize == o.tileSize &&
		slices.Equal(g.cells, o.cells)
}
