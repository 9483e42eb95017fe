package factory

import (
	"fmt"

	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/render"
)

// Default shapes used by the gravity game.
const (
	BoxSize       = 20
	PlatformWidth = 100
)

var (
	BoxColor      = render.Red
	PlatformColor = render.DarkGray
)

// emplace attaches to an entity created in the same call; it cannot be
// stale.
func emplace[T any](r *ecs.Registry, e ecs.Entity, v T) {
	if err := ecs.Emplace(r, e, v); err != nil {
		panic(err)
	}
}

// NewBox creates the droppable box with its top-left corner at (x, y). It
// starts Held so it hangs in place until dropped.
func NewBox(r *ecs.Registry, x, y float64) ecs.Entity {
	e := r.Create()
	emplace(r, e, component.Rect{X: x, Y: y, W: BoxSize, H: BoxSize})
	emplace(r, e, component.Droppable{})
	emplace(r, e, component.NewRigidBody())
	emplace(r, e, component.Collidable{})
	emplace(r, e, component.Held{})
	emplace(r, e, component.MouseInteractible{})
	emplace(r, e, component.Drawable{Tint: BoxColor, DefaultTint: BoxColor})
	return e
}

// NewPlatform creates a static collidable the box can land on. It is
// Kinematic: gravity never applies to it, though it may slide.
func NewPlatform(r *ecs.Registry, x, y, w, h float64) ecs.Entity {
	e := r.Create()
	emplace(r, e, component.Rect{X: x, Y: y, W: w, H: h})
	emplace(r, e, component.NewRigidBody())
	emplace(r, e, component.Collidable{})
	emplace(r, e, component.Kinematic{})
	emplace(r, e, component.MouseInteractible{})
	emplace(r, e, component.Draggable{})
	emplace(r, e, component.Drawable{Tint: PlatformColor, DefaultTint: PlatformColor})
	return e
}

// NewLabel creates a text entity. It gets its Drawable from the text sync
// system on the next tick.
func NewLabel(r *ecs.Registry, text string, x, y, size int, c render.Color) ecs.Entity {
	e := r.Create()
	emplace(r, e, component.Text{Content: text, X: x, Y: y, FontSize: size, Color: c})
	return e
}

// NewSprite creates an entity drawn with the image at path. When the image
// cannot be loaded the entity is still created with a nil texture and the
// error is returned for logging.
func NewSprite(r *ecs.Registry, l render.TextureLoader, path string, rect component.Rect) (ecs.Entity, error) {
	e := r.Create()
	emplace(r, e, rect)
	emplace(r, e, component.Drawable{Tint: render.White, DefaultTint: render.White})
	tex, err := l.LoadTexture(path)
	if err != nil {
		err = fmt.Errorf("sprite %s: %w", path, err)
		tex = nil
	}
	emplace(r, e, component.Texture{Path: path, Tex: tex})
	return e, err
}

// Unload releases the textures held by Texture components.
func Unload(r *ecs.Registry, l render.TextureLoader) int {
	n := 0
	ecs.Each1(r, func(_ ecs.Entity, t *component.Texture) {
		if t.Tex != nil {
			l.UnloadTexture(t.Tex)
			t.Tex = nil
			n++
		}
	})
	return n
}
