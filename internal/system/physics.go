package system

import (
	"tile-sandbox/internal/component"
	"tile-sandbox/internal/ecs"
)

// DefaultPixelsPerMeter converts body velocities to screen motion.
const DefaultPixelsPerMeter = 40.0

// Physics applies the registry's Gravity context to every rigid body that
// is not Grounded, Held or Kinematic. A registry without Gravity is a
// setup bug and panics.
type Physics struct{}

func (Physics) OnUpdate(r *ecs.Registry, dt float64) bool {
	g := ecs.MustContext[component.Gravity](r).Value
	changed := false
	ecs.Each2(r, func(_ ecs.Entity, body *component.RigidBody, _ *component.Rect) {
		body.Velocity.Y += g * dt
		changed = true
	}, ecs.TypeOf[component.Grounded](), ecs.TypeOf[component.Held](), ecs.TypeOf[component.Kinematic]())
	return changed
}

// Motion moves each body's Rect by its velocity. Held bodies stay put.
type Motion struct {
	PixelsPerMeter float64
}

func (m Motion) OnUpdate(r *ecs.Registry, dt float64) bool {
	ppm := m.PixelsPerMeter
	if ppm == 0 {
		ppm = DefaultPixelsPerMeter
	}
	moved := false
	ecs.Each2(r, func(_ ecs.Entity, rect *component.Rect, body *component.RigidBody) {
		if body.Velocity == (component.Vec2{}) {
			return
		}
		rect.X += body.Velocity.X * ppm * dt
		rect.Y += body.Velocity.Y * ppm * dt
		moved = true
	}, ecs.TypeOf[component.Held]())
	return moved
}
