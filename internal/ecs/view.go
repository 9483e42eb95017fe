package ecs

import "iter"

// View is a filter over entities that hold every include type and none of
// the exclude types. It keeps no entity state: each iteration re-derives its
// members from the smallest included storage, walks a snapshot of that
// storage and re-checks the filter right before yielding, so components may
// be attached or detached from inside the loop without yielding an entity
// that no longer matches. Entities that start matching during the loop are
// not guaranteed to be visited.
type View struct {
	reg     *Registry
	include []ComponentType
	exclude []ComponentType
}

// View returns a View over entities holding all of include.
func (r *Registry) View(include ...ComponentType) View {
	return View{reg: r, include: include}
}

// Without returns a copy of v that also rejects entities holding any of
// exclude.
func (v View) Without(exclude ...ComponentType) View {
	ex := make([]ComponentType, 0, len(v.exclude)+len(exclude))
	ex = append(ex, v.exclude...)
	ex = append(ex, exclude...)
	v.exclude = ex
	return v
}

// Contains reports whether e currently passes the filter.
func (v View) Contains(e Entity) bool {
	if !v.reg.Valid(e) {
		return false
	}
	for _, ct := range v.include {
		s := v.reg.storeOf(ct)
		if s == nil || !s.has(e) {
			return false
		}
	}
	for _, ct := range v.exclude {
		if s := v.reg.storeOf(ct); s != nil && s.has(e) {
			return false
		}
	}
	return true
}

// candidates returns a snapshot of the entities worth testing.
func (v View) candidates() []Entity {
	if len(v.include) == 0 {
		return v.reg.Entities()
	}
	var smallest erased
	for _, ct := range v.include {
		s := v.reg.storeOf(ct)
		if s == nil {
			return nil
		}
		if smallest == nil || s.size() < smallest.size() {
			smallest = s
		}
	}
	out := make([]Entity, smallest.size())
	copy(out, smallest.entities())
	return out
}

// All yields matching entities.
func (v View) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, e := range v.candidates() {
			if v.Contains(e) && !yield(e) {
				return
			}
		}
	}
}

// Each calls fn for every matching entity.
func (v View) Each(fn func(Entity)) {
	for e := range v.All() {
		fn(e)
	}
}

// Entities collects the matching entities.
func (v View) Entities() []Entity {
	var out []Entity
	for e := range v.All() {
		out = append(out, e)
	}
	return out
}

// Len counts the matching entities.
func (v View) Len() int {
	n := 0
	for range v.All() {
		n++
	}
	return n
}

// Each1 calls fn with a pointer to A for every entity holding A and none of
// exclude.
func Each1[A any](r *Registry, fn func(Entity, *A), exclude ...ComponentType) {
	v := r.View(TypeOf[A]()).Without(exclude...)
	for e := range v.All() {
		fn(e, MustGet[A](r, e))
	}
}

// Each2 is Each1 for two component types.
func Each2[A, B any](r *Registry, fn func(Entity, *A, *B), exclude ...ComponentType) {
	v := r.View(TypeOf[A](), TypeOf[B]()).Without(exclude...)
	for e := range v.All() {
		fn(e, MustGet[A](r, e), MustGet[B](r, e))
	}
}

// Each3 is Each1 for three component types.
func Each3[A, B, C any](r *Registry, fn func(Entity, *A, *B, *C), exclude ...ComponentType) {
	v := r.View(TypeOf[A](), TypeOf[B](), TypeOf[C]()).Without(exclude...)
	for e := range v.All() {
		fn(e, MustGet[A](r, e), MustGet[B](r, e), MustGet[C](r, e))
	}
}

// Each4 is Each1 for four component types.
func Each4[A, B, C, D any](r *Registry, fn func(Entity, *A, *B, *C, *D), exclude ...ComponentType) {
	v := r.View(TypeOf[A](), TypeOf[B](), TypeOf[C](), TypeOf[D]()).Without(exclude...)
	for e := range v.All() {
		fn(e, MustGet[A](r, e), MustGet[B](r, e), MustGet[C](r, e), MustGet[D](r, e))
	}
}
