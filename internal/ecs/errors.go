package ecs

import "errors"

var (
	// ErrNotFound is returned when a component or context value is missing.
	ErrNotFound = errors.New("ecs: not found")
	// ErrStaleEntity is returned for a handle that is not live in the registry.
	ErrStaleEntity = errors.New("ecs: stale entity")
)
