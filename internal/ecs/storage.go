package ecs

import "fmt"

// erased is the type-erased view of a Storage the Registry keeps per type.
type erased interface {
	componentType() ComponentType
	has(e Entity) bool
	remove(e Entity) bool
	entities() []Entity
	size() int
	clear()
}

// Storage is a sparse set holding one value of T per entity.
//
// Values live in a dense slice; removal swaps the last element into the
// freed slot, so iteration order is not stable across Detach calls.
// Pointers returned by Get stay valid until the next Attach or Detach on
// the same storage.
type Storage[T any] struct {
	dense  []Entity
	values []T
	sparse []int32 // entity ID -> dense slot + 1, 0 when absent
}

// NewStorage returns an empty Storage.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{}
}

func (s *Storage[T]) slot(e Entity) (int, bool) {
	id := int(e.ID())
	if e == Null || id >= len(s.sparse) {
		return 0, false
	}
	idx := int(s.sparse[id]) - 1
	if idx < 0 || s.dense[idx] != e {
		return 0, false
	}
	return idx, true
}

// Attach stores v for e, overwriting any existing value.
func (s *Storage[T]) Attach(e Entity, v T) {
	if e == Null {
		return
	}
	if idx, ok := s.slot(e); ok {
		s.values[idx] = v
		return
	}
	id := int(e.ID())
	if id < len(s.sparse) && s.sparse[id] != 0 {
		// Same slot ID under an older version: the stale entry is replaced.
		idx := int(s.sparse[id]) - 1
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	if id >= len(s.sparse) {
		grown := make([]int32, id+1, max(2*len(s.sparse), id+1))
		copy(grown, s.sparse)
		s.sparse = grown
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id] = int32(len(s.dense))
}

// Detach removes the value for e. It reports whether a value was present.
func (s *Storage[T]) Detach(e Entity) bool {
	idx, ok := s.slot(e)
	if !ok {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.ID()] = int32(idx + 1)
	s.sparse[e.ID()] = 0

	var zero T
	s.values[last] = zero
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	return true
}

// Get returns a pointer to the value for e, or ErrNotFound.
func (s *Storage[T]) Get(e Entity) (*T, error) {
	idx, ok := s.slot(e)
	if !ok {
		return nil, fmt.Errorf("%w: %s on entity %s", ErrNotFound, TypeOf[T](), e)
	}
	return &s.values[idx], nil
}

// Has reports whether e has a value in this storage.
func (s *Storage[T]) Has(e Entity) bool {
	_, ok := s.slot(e)
	return ok
}

// Len returns the number of stored values.
func (s *Storage[T]) Len() int { return len(s.dense) }

// Entities returns the dense entity slice. Callers must not modify it and
// must copy it before mutating the storage.
func (s *Storage[T]) Entities() []Entity { return s.dense }

// Clear drops every value.
func (s *Storage[T]) Clear() {
	clear(s.values)
	s.dense = s.dense[:0]
	s.values = s.values[:0]
	clear(s.sparse)
}

func (s *Storage[T]) componentType() ComponentType { return TypeOf[T]() }
func (s *Storage[T]) has(e Entity) bool            { return s.Has(e) }
func (s *Storage[T]) remove(e Entity) bool         { return s.Detach(e) }
func (s *Storage[T]) entities() []Entity           { return s.dense }
func (s *Storage[T]) size() int                    { return len(s.dense) }
func (s *Storage[T]) clear()                       { s.Clear() }
