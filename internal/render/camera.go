package render

// Camera translates between pixel coordinates and terminal cells.
// A terminal cell stands for a CellW × CellH block of pixels; cells are
// roughly twice as tall as wide, so the defaults keep tiles square.
type Camera struct {
	CellW, CellH int // pixels per cell
	Cols, Rows   int // viewport in cells
}

// NewCamera creates a camera for a cols × rows terminal.
func NewCamera(cellW, cellH, cols, rows int) *Camera {
	return &Camera{CellW: max(cellW, 1), CellH: max(cellH, 1), Cols: cols, Rows: rows}
}

// Resize updates the viewport after a terminal resize.
func (c *Camera) Resize(cols, rows int) {
	c.Cols, c.Rows = cols, rows
}

// PixelSize returns the viewport in pixels.
func (c *Camera) PixelSize() (w, h int) {
	return c.Cols * c.CellW, c.Rows * c.CellH
}

// PixelToCell converts pixel (px, py) to the cell containing it.
func (c *Camera) PixelToCell(px, py int) (cx, cy int) {
	return floorDiv(px, c.CellW), floorDiv(py, c.CellH)
}

// CellToPixel returns the top-left pixel of cell (cx, cy).
func (c *Camera) CellToPixel(cx, cy int) (px, py int) {
	return cx * c.CellW, cy * c.CellH
}

// Visible reports whether cell (cx, cy) is inside the viewport.
func (c *Camera) Visible(cx, cy int) bool {
	return cx >= 0 && cx < c.Cols && cy >= 0 && cy < c.Rows
}

// Span returns the half-open cell range [x0,x1)×[y0,y1) covered by the pixel
// rectangle, clipped to the viewport. ok is false when nothing is visible.
// A non-empty rectangle always covers at least one cell, so thin shapes
// such as 2px borders do not vanish.
func (c *Camera) Span(px, py, w, h int) (x0, y0, x1, y1 int, ok bool) {
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}
	x0, y0 = floorDiv(px, c.CellW), floorDiv(py, c.CellH)
	x1, y1 = ceilDiv(px+w, c.CellW), ceilDiv(py+h, c.CellH)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.Cols), min(y1, c.Rows)
	return x0, y0, x1, y1, x0 < x1 && y0 < y1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}
