package ecs

import (
	"fmt"
	"reflect"
)

// Context values are per-registry singletons keyed by type, used for
// simulation-wide parameters such as gravity.

// SetContext stores v as the registry's T, replacing any previous value.
func SetContext[T any](r *Registry, v T) *T {
	p := new(T)
	*p = v
	r.ctx[reflect.TypeFor[T]()] = p
	return p
}

// Context returns the registry's T, or an error wrapping ErrNotFound.
func Context[T any](r *Registry) (*T, error) {
	if p, ok := r.ctx[reflect.TypeFor[T]()]; ok {
		return p.(*T), nil
	}
	return nil, fmt.Errorf("%w: context %s", ErrNotFound, TypeOf[T]())
}

// MustContext is Context for callers that treat a missing value as a bug.
func MustContext[T any](r *Registry) *T {
	p, err := Context[T](r)
	if err != nil {
		panic(err)
	}
	return p
}

// ContextOrInit returns the registry's T, creating a zero value on demand.
func ContextOrInit[T any](r *Registry) *T {
	if p, err := Context[T](r); err == nil {
		return p
	}
	var zero T
	return SetContext(r, zero)
}

// HasContext reports whether a T was stored.
func HasContext[T any](r *Registry) bool {
	_, ok := r.ctx[reflect.TypeFor[T]()]
	return ok
}

// UnsetContext drops the registry's T. It reports whether one was present.
func UnsetContext[T any](r *Registry) bool {
	rt := reflect.TypeFor[T]()
	if _, ok := r.ctx[rt]; !ok {
		return false
	}
	delete(r.ctx, rt)
	return true
}
