package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal draws pixel-space requests onto a tcell screen. Every request is
// snapped to the cells its pixels cover (see Camera).
type Terminal struct {
	screen tcell.Screen
	camera *Camera
}

// NewTerminal creates a Terminal canvas for screen, with each cell
// standing for cellW × cellH pixels.
func NewTerminal(screen tcell.Screen, cellW, cellH int) *Terminal {
	cols, rows := screen.Size()
	return &Terminal{
		screen: screen,
		camera: NewCamera(cellW, cellH, cols, rows),
	}
}

// Camera exposes the pixel/cell mapping, shared with terminal input.
func (t *Terminal) Camera() *Camera { return t.camera }

// Sync re-reads the terminal size after a resize event.
func (t *Terminal) Sync() {
	t.screen.Sync()
	t.camera.Resize(t.screen.Size())
}

func (t *Terminal) Size() (int, int) { return t.camera.PixelSize() }

func (t *Terminal) Clear(c Color) {
	t.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (t *Terminal) FillRect(x, y, w, h int, c Color) {
	x0, y0, x1, y1, ok := t.camera.Span(x, y, w, h)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(tcellColor(c))
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (t *Terminal) StrokeRect(x, y, w, h int, c Color) {
	x0, y0, x1, y1, ok := t.camera.Span(x, y, w, h)
	if !ok {
		return
	}
	for cx := x0; cx < x1; cx++ {
		t.putRune(cx, y0, '─', c)
		t.putRune(cx, y1-1, '─', c)
	}
	for cy := y0; cy < y1; cy++ {
		t.putRune(x0, cy, '│', c)
		t.putRune(x1-1, cy, '│', c)
	}
	if x1-x0 > 1 && y1-y0 > 1 {
		t.putRune(x0, y0, '┌', c)
		t.putRune(x1-1, y0, '┐', c)
		t.putRune(x0, y1-1, '└', c)
		t.putRune(x1-1, y1-1, '┘', c)
	}
}

// Line walks the cells between the end points with Bresenham's algorithm.
func (t *Terminal) Line(x0, y0, x1, y1 int, c Color) {
	cx0, cy0 := t.camera.PixelToCell(x0, y0)
	cx1, cy1 := t.camera.PixelToCell(x1, y1)
	glyph := '·'
	switch {
	case cy0 == cy1:
		glyph = '─'
	case cx0 == cx1:
		glyph = '│'
	}

	dx, dy := abs(cx1-cx0), -abs(cy1-cy0)
	sx, sy := sign(cx1-cx0), sign(cy1-cy0)
	e := dx + dy
	for {
		t.putRune(cx0, cy0, glyph, c)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += sx
		}
		if e2 <= dx {
			e += dx
			cy0 += sy
		}
	}
}

// Text draws s starting at the cell containing (x, y). Font size has no
// meaning in a terminal and is ignored.
func (t *Terminal) Text(x, y int, s string, _ int, c Color) {
	cx, cy := t.camera.PixelToCell(x, y)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		t.putRune(cx, cy, r, c)
		cx += w
	}
}

// DrawTexture shades the covered cells; terminals cannot show images.
func (t *Terminal) DrawTexture(_ Texture, x, y, w, h int) {
	x0, y0, x1, y1, ok := t.camera.Span(x, y, w, h)
	if !ok {
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			t.putRune(cx, cy, '▒', Gray)
		}
	}
}

func (t *Terminal) Present() { t.screen.Show() }

// putRune draws r in color c, keeping the background already in the cell.
func (t *Terminal) putRune(cx, cy int, r rune, c Color) {
	if !t.camera.Visible(cx, cy) {
		return
	}
	_, _, style, _ := t.screen.GetContent(cx, cy)
	t.screen.SetContent(cx, cy, r, nil, style.Foreground(tcellColor(c)))
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
