package ecs

import (
	"fmt"
	"reflect"
)

type slot struct {
	version uint32
	alive   bool
}

// Registry is the central entity registry and component store.
type Registry struct {
	slots  []slot   // index = entity ID; slot 0 is reserved for Null
	free   []uint32 // recycled IDs
	alive  int
	stores map[reflect.Type]erased
	order  []erased // creation order, for deterministic teardown
	ctx    map[reflect.Type]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		slots:  make([]slot, 1),
		stores: make(map[reflect.Type]erased),
		ctx:    make(map[reflect.Type]any),
	}
}

// Create mints a handle that has never been live before.
func (r *Registry) Create() Entity {
	r.alive++
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[id].alive = true
		return newEntity(id, r.slots[id].version)
	}
	r.slots = append(r.slots, slot{alive: true})
	return newEntity(uint32(len(r.slots)-1), 0)
}

// Valid reports whether e is a live handle of this registry.
func (r *Registry) Valid(e Entity) bool {
	id := e.ID()
	if e == Null || int(id) >= len(r.slots) {
		return false
	}
	s := r.slots[id]
	return s.alive && s.version == e.Version()
}

// Destroy removes every component of e and invalidates the handle.
func (r *Registry) Destroy(e Entity) error {
	if !r.Valid(e) {
		return fmt.Errorf("destroy %s: %w", e, ErrStaleEntity)
	}
	for _, s := range r.order {
		s.remove(e)
	}
	r.release(e.ID())
	return nil
}

func (r *Registry) release(id uint32) {
	r.slots[id].alive = false
	r.slots[id].version++
	r.free = append(r.free, id)
	r.alive--
}

// Alive returns the number of live entities.
func (r *Registry) Alive() int { return r.alive }

// Entities returns a snapshot of all live handles in ID order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, r.alive)
	for id := 1; id < len(r.slots); id++ {
		if s := r.slots[id]; s.alive {
			out = append(out, newEntity(uint32(id), s.version))
		}
	}
	return out
}

// Components lists the component types e currently holds.
func (r *Registry) Components(e Entity) []ComponentType {
	var out []ComponentType
	for _, s := range r.order {
		if s.has(e) {
			out = append(out, s.componentType())
		}
	}
	return out
}

// Clear destroys every entity and drops all components and context values.
func (r *Registry) Clear() {
	for _, s := range r.order {
		s.clear()
	}
	for id := 1; id < len(r.slots); id++ {
		if r.slots[id].alive {
			r.release(uint32(id))
		}
	}
	clear(r.ctx)
}

func (r *Registry) storeOf(ct ComponentType) erased {
	return r.stores[ct.rt]
}

// StorageOf returns the storage for T, creating it on first use.
func StorageOf[T any](r *Registry) *Storage[T] {
	rt := reflect.TypeFor[T]()
	if s, ok := r.stores[rt]; ok {
		return s.(*Storage[T])
	}
	s := NewStorage[T]()
	r.stores[rt] = s
	r.order = append(r.order, s)
	return s
}

func lookup[T any](r *Registry) *Storage[T] {
	if s, ok := r.stores[reflect.TypeFor[T]()]; ok {
		return s.(*Storage[T])
	}
	return nil
}

// Emplace attaches v to e, overwriting an existing T.
func Emplace[T any](r *Registry, e Entity, v T) error {
	if !r.Valid(e) {
		return fmt.Errorf("emplace %s on %s: %w", TypeOf[T](), e, ErrStaleEntity)
	}
	StorageOf[T](r).Attach(e, v)
	return nil
}

// Remove detaches T from e. It reports whether a value was removed.
func Remove[T any](r *Registry, e Entity) bool {
	if s := lookup[T](r); s != nil {
		return s.Detach(e)
	}
	return false
}

// Get returns a pointer to e's T, or an error wrapping ErrNotFound.
func Get[T any](r *Registry, e Entity) (*T, error) {
	if s := lookup[T](r); s != nil {
		return s.Get(e)
	}
	return nil, fmt.Errorf("%w: %s on entity %s", ErrNotFound, TypeOf[T](), e)
}

// MustGet is Get for callers that treat a missing component as a bug.
func MustGet[T any](r *Registry, e Entity) *T {
	v, err := Get[T](r, e)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether e holds a T.
func Has[T any](r *Registry, e Entity) bool {
	s := lookup[T](r)
	return s != nil && s.Has(e)
}

// Patch applies fn to e's T in place.
func Patch[T any](r *Registry, e Entity, fn func(*T)) error {
	v, err := Get[T](r, e)
	if err != nil {
		return err
	}
	fn(v)
	return nil
}

// Count returns how many entities hold a T.
func Count[T any](r *Registry) int {
	if s := lookup[T](r); s != nil {
		return s.Len()
	}
	return 0
}
