package grid

import "tile-sandbox/internal/render"

// GridLineColor is the color of the optional tile outlines.
var GridLineColor = render.LightGray

// Draw fills one tile-sized rectangle per non-empty cell, offset by
// (ox, oy). With showGrid set it then draws the tile boundaries.
func (g *Grid) Draw(c render.Canvas, p Palette, ox, oy int, showGrid bool) {
	ts := g.tileSize
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			v := g.cells[row*g.cols+col]
			if v == Empty {
				continue
			}
			c.FillRect(ox+col*ts, oy+row*ts, ts, ts, p.Color(v))
		}
	}
	if showGrid {
		g.drawLines(c, ox, oy)
	}
}

func (g *Grid) drawLines(c render.Canvas, ox, oy int) {
	ts := g.tileSize
	w, h := g.cols*ts, g.rows*ts
	for col := 0; col <= g.cols; col++ {
		x := ox + col*ts
		c.Line(x, oy, x, oy+h, GridLineColor)
	}
	for row := 0; row <= g.rows; row++ {
		y := oy + row*ts
		c.Line(ox, y, ox+w, y, GridLineColor)
	}
}
