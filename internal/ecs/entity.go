package ecs

import (
	"fmt"
	"reflect"
)

// Entity is a versioned handle. The low 32 bits hold the slot ID and the
// high 32 bits the version the slot had when the handle was minted, so a
// handle kept past Destroy never matches a recycled slot.
type Entity uint64

// Null is the zero handle. No live entity ever has it.
const Null Entity = 0

func newEntity(id, version uint32) Entity {
	return Entity(uint64(version)<<32 | uint64(id))
}

// ID returns the slot part of the handle.
func (e Entity) ID() uint32 { return uint32(e) }

// Version returns the generation part of the handle.
func (e Entity) Version() uint32 { return uint32(e >> 32) }

func (e Entity) String() string {
	if e == Null {
		return "null"
	}
	return fmt.Sprintf("%d.%d", e.ID(), e.Version())
}

// ComponentType identifies the storage of one Go type inside a Registry.
type ComponentType struct {
	rt reflect.Type
}

// TypeOf returns the ComponentType for T.
func TypeOf[T any]() ComponentType {
	return ComponentType{rt: reflect.TypeFor[T]()}
}

func (c ComponentType) String() string {
	if c.rt == nil {
		return "<nil>"
	}
	return c.rt.String()
}
