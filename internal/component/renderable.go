package component

import "tile-sandbox/internal/render"

// Drawable marks an entity for rendering with Tint. DefaultTint is the
// color to return to after a highlight.
type Drawable struct {
	Tint        render.Color
	DefaultTint render.Color
}

// Text is a label drawn at a pixel position.
type Text struct {
	Content  string
	X, Y     int
	FontSize int
	Color    render.Color
}

// Texture is an image drawn over the entity's Rect. Tex is nil when
// loading failed; renderers draw a placeholder instead.
type Texture struct {
	Path string
	Tex  render.Texture
}
