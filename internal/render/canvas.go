package render

import "errors"

// ErrResourceLoad is returned when an external asset cannot be loaded.
var ErrResourceLoad = errors.New("render: resource load failed")

// Canvas receives draw requests in screen pixel coordinates. Calls are
// synchronous and never fail; a backend that cannot express a request
// approximates it.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	Clear(c Color)
	FillRect(x, y, w, h int, c Color)
	StrokeRect(x, y, w, h int, c Color)
	Line(x0, y0, x1, y1 int, c Color)
	// Text draws s with its top-left corner at (x, y). size is the font
	// height in pixels.
	Text(x, y int, s string, size int, c Color)
	DrawTexture(t Texture, x, y, w, h int)
	// Present flushes the frame.
	Present()
}

// Texture is an image loaded by a TextureLoader.
type Texture interface {
	Path() string
	Size() (w, h int)
}

// TextureLoader loads and releases textures for one backend.
type TextureLoader interface {
	LoadTexture(path string) (Texture, error)
	UnloadTexture(t Texture)
}
