package grid

import "tile-sandbox/internal/render"

// Palette maps cell values 1..len(Colors) to colors. Value 0 is empty and
// has no color.
type Palette struct {
	Colors   []render.Color
	Fallback render.Color
}

// DefaultPalette is Black, Red, Green, Blue for values 1..4 with a Black
// fallback.
func DefaultPalette() Palette {
	return Palette{
		Colors:   []render.Color{render.Black, render.Red, render.Green, render.Blue},
		Fallback: render.Black,
	}
}

// Color returns the color for v. Values outside 1..Len use Fallback.
func (p Palette) Color(v int) render.Color {
	if v >= 1 && v <= len(p.Colors) {
		return p.Colors[v-1]
	}
	return p.Fallback
}

// Len returns the number of paintable values.
func (p Palette) Len() int { return len(p.Colors) }
