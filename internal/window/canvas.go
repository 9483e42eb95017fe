// Package window runs a simulation in a desktop window with ebiten.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tile-sandbox/internal/render"
)

// Canvas draws onto the ebiten screen image handed to Draw. Between frames
// it has no target and drawing is a no-op.
type Canvas struct {
	w, h   int
	target *ebiten.Image
}

// NewCanvas creates a Canvas with a fixed logical size.
func NewCanvas(w, h int) *Canvas { return &Canvas{w: w, h: h} }

func (c *Canvas) begin(screen *ebiten.Image) { c.target = screen }
func (c *Canvas) end()                       { c.target = nil }

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear(col render.Color) {
	if c.target != nil {
		c.target.Fill(col)
	}
}

func (c *Canvas) FillRect(x, y, w, h int, col render.Color) {
	if c.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *Canvas) StrokeRect(x, y, w, h int, col render.Color) {
	if c.target == nil || w <= 0 || h <= 0 {
		return
	}
	vector.StrokeRect(c.target, float32(x), float32(y), float32(w), float32(h), 1, col, false)
}

func (c *Canvas) Line(x0, y0, x1, y1 int, col render.Color) {
	if c.target == nil {
		return
	}
	vector.StrokeLine(c.target, float32(x0), float32(y0), float32(x1), float32(y1), 1, col, false)
}

// Text uses the built-in debug font, which has one size and color.
func (c *Canvas) Text(x, y int, s string, _ int, _ render.Color) {
	if c.target != nil {
		ebitenutil.DebugPrintAt(c.target, s, x, y)
	}
}

func (c *Canvas) DrawTexture(t render.Texture, x, y, w, h int) {
	img, ok := t.(*texture)
	if c.target == nil || !ok || img.img == nil {
		return
	}
	tw, th := img.Size()
	if tw == 0 || th == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(tw), float64(h)/float64(th))
	op.GeoM.Translate(float64(x), float64(y))
	c.target.DrawImage(img.img, op)
}

// Present is a no-op: ebiten shows the screen after Draw returns.
func (c *Canvas) Present() {}

type texture struct {
	path string
	img  *ebiten.Image
}

func (t *texture) Path() string { return t.path }

func (t *texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	return t.img.Bounds().Dx(), t.img.Bounds().Dy()
}

// Textures loads images from disk into GPU images.
type Textures struct{}

func (Textures) LoadTexture(path string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", render.ErrResourceLoad, path, err)
	}
	return &texture{path: path, img: img}, nil
}

func (Textures) UnloadTexture(t render.Texture) {
	if tex, ok := t.(*texture); ok && tex.img != nil {
		tex.img.Deallocate()
		tex.img = nil
	}
}
