package sim

import (
	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/render"
)

// drawBodies fills every Rect that has a Drawable, outlining selected
// ones. Entities with a Texture draw the image, or an outlined placeholder
// when it failed to load.
func drawBodies(c render.Canvas, r *ecs.Registry) {
	ecs.Each2(r, func(e ecs.Entity, rect *component.Rect, d *component.Drawable) {
		x, y, w, h := int(rect.X), int(rect.Y), int(rect.W), int(rect.H)
		if t, err := ecs.Get[component.Texture](r, e); err == nil {
			if t.Tex != nil {
				c.DrawTexture(t.Tex, x, y, w, h)
			} else {
				c.StrokeRect(x, y, w, h, render.Gray)
			}
		} else {
			c.FillRect(x, y, w, h, d.Tint)
		}
		if mi, err := ecs.Get[component.MouseInteractible](r, e); err == nil && mi.Selected {
			c.StrokeRect(x, y, w, h, render.Black)
		}
	})
}

// drawLabels draws every Text that has a Drawable, in its tint.
func drawLabels(c render.Canvas, r *ecs.Registry) {
	ecs.Each2(r, func(_ ecs.Entity, t *component.Text, d *component.Drawable) {
		c.Text(t.X, t.Y, t.Content, t.FontSize, d.Tint)
	})
}
