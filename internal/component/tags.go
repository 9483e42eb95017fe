package component

// Droppable marks the falling object. Dropped is set once it was released.
type Droppable struct {
	Dropped bool
}

// Collidable takes part in collision tests. Colliding is recomputed every
// tick.
type Collidable struct {
	Colliding bool
}

// Grounded marks an entity resting on a collidable this tick. Only the
// collision system adds or removes it.
type Grounded struct{}

// Held pins a body in place: neither gravity nor its velocity moves it.
// The gravity game removes it when the box is dropped.
type Held struct{}

// Kinematic bodies move with their velocity but ignore gravity.
type Kinematic struct{}

// MouseInteractible tracks pointer state over the entity's Rect.
type MouseInteractible struct {
	Hovered    bool
	WasClicked bool
	Selected   bool
}

// Draggable lets the pointer move the entity's Rect.
type Draggable struct {
	Dragged bool
}

// Pointer is the registry context value holding this frame's pointer
// state, written by the input handler before systems run.
type Pointer struct {
	X, Y     float64
	Down     bool
	Clicked  bool
	Released bool
}
