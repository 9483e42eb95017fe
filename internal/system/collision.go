package system

import (
	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
)

// Collision lands droppable bodies on static collidables.
//
// Every droppable that overlaps a static collidable gets its vertical
// velocity zeroed and inherits the static body's horizontal velocity, so
// it rides moving platforms. Grounded is then attached to droppables that
// collided this tick and removed from those that did not, so it always
// mirrors this tick's contact.
type Collision struct {
	cmds ecs.CommandBuffer
}

func (c *Collision) OnUpdate(r *ecs.Registry, _ float64) bool {
	ecs.Each1(r, func(_ ecs.Entity, col *component.Collidable) {
		col.Colliding = false
	})

	droppables := r.View(
		ecs.TypeOf[component.Droppable](),
		ecs.TypeOf[component.Rect](),
		ecs.TypeOf[component.RigidBody](),
		ecs.TypeOf[component.Collidable](),
	)
	statics := r.View(
		ecs.TypeOf[component.Collidable](),
		ecs.TypeOf[component.Rect](),
		ecs.TypeOf[component.RigidBody](),
	).Without(ecs.TypeOf[component.Droppable]())

	changed := false
	for d := range droppables.All() {
		rect := ecs.MustGet[component.Rect](r, d)
		body := ecs.MustGet[component.RigidBody](r, d)
		self := ecs.MustGet[component.Collidable](r, d)

		for s := range statics.All() {
			if !rect.Overlaps(*ecs.MustGet[component.Rect](r, s)) {
				continue
			}
			other := ecs.MustGet[component.Collidable](r, s)
			other.Colliding = true
			self.Colliding = true
			body.Velocity.Y = 0
			body.Velocity.X = ecs.MustGet[component.RigidBody](r, s).Velocity.X
		}

		grounded := ecs.Has[component.Grounded](r, d)
		switch {
		case self.Colliding && !grounded:
			ecs.DeferEmplace(&c.cmds, d, component.Grounded{})
			changed = true
		case !self.Colliding && grounded:
			ecs.DeferRemove[component.Grounded](&c.cmds, d)
			changed = true
		}
	}
	if err := c.cmds.Flush(r); err != nil {
		panic(err)
	}
	return changed
}
