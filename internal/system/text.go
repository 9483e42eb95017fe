package system

import (
	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
)

// TextSync gives every Text entity without a Drawable one tinted with the
// text color, so labels created at runtime become visible.
type TextSync struct {
	disabled bool
	cmds     ecs.CommandBuffer
}

// Toggle flips whether the system runs.
func (t *TextSync) Toggle() { t.disabled = !t.disabled }

// Enabled reports whether the system runs.
func (t *TextSync) Enabled() bool { return !t.disabled }

func (t *TextSync) OnUpdate(r *ecs.Registry, _ float64) bool {
	if t.disabled {
		return false
	}
	ecs.Each1(r, func(e ecs.Entity, text *component.Text) {
		ecs.DeferEmplace(&t.cmds, e, component.Drawable{Tint: text.Color, DefaultTint: text.Color})
	}, ecs.TypeOf[component.Drawable]())
	added := t.cmds.Len() > 0
	if err := t.cmds.Flush(r); err != nil {
		panic(err)
	}
	return added
}
