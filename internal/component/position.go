package component

// Vec2 is a 2D vector in simulation units.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Scale returns v*k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RigidBody carries linear motion state. Velocity is in meters per second.
type RigidBody struct {
	Velocity     Vec2
	Acceleration Vec2
	Mass         float64
	InverseMass  float64
}

// NewRigidBody returns a body of mass 1 at rest.
func NewRigidBody() RigidBody {
	return RigidBody{Mass: 1, InverseMass: 1}
}

// SetMass sets the mass and its inverse. A zero mass is immovable.
func (b *RigidBody) SetMass(m float64) {
	b.Mass = m
	if m == 0 {
		b.InverseMass = 0
		return
	}
	b.InverseMass = 1 / m
}

// Gravity is the registry context value read by the physics system, in
// meters per second squared.
type Gravity struct {
	Value float64
}

// DefaultGravity is Earth gravity.
const DefaultGravity = 9.81
