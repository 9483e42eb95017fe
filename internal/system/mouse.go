package system

import (
	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
	"tile-sandbox/internal/render"
)

// SelectedTint is the Drawable tint of a selected entity.
var SelectedTint = render.Yellow

// Hover updates MouseInteractible state from the registry's Pointer
// context: a click on an entity toggles its selection and tint. Dragged
// entities follow the pointer while the button is held. Without a Pointer
// context it does nothing.
type Hover struct {
	lastX, lastY float64
}

func (h *Hover) OnUpdate(r *ecs.Registry, _ float64) bool {
	p, err := ecs.Context[component.Pointer](r)
	if err != nil {
		return false
	}
	dx, dy := p.X-h.lastX, p.Y-h.lastY
	h.lastX, h.lastY = p.X, p.Y

	changed := false
	ecs.Each2(r, func(e ecs.Entity, rect *component.Rect, mi *component.MouseInteractible) {
		over := rect.Contains(p.X, p.Y)
		mi.Hovered = over
		mi.WasClicked = over && p.Clicked
		if mi.WasClicked {
			mi.Selected = !mi.Selected
			changed = true
		}
		if d, err := ecs.Get[component.Drawable](r, e); err == nil {
			if mi.Selected {
				d.Tint = SelectedTint
			} else {
				d.Tint = d.DefaultTint
			}
		}
	})

	ecs.Each2(r, func(e ecs.Entity, rect *component.Rect, drag *component.Draggable) {
		switch {
		case p.Clicked && rect.Contains(p.X, p.Y):
			drag.Dragged = true
		case !p.Down:
			drag.Dragged = false
		}
		if drag.Dragged && (dx != 0 || dy != 0) && !p.Clicked {
			rect.X += dx
			rect.Y += dy
			changed = true
		}
	})
	return changed
}
