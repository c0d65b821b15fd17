package ecs

// EntityID uniquely identifies an entity in the world. IDs are never reused,
// so ordering by ID is ordering by creation.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// Change records that a tracked component was written on an entity.
// Prev is the value before the first write since the last TakeChanges,
// or nil when the component did not exist yet.
type Change struct {
	ID   EntityID
	Prev Component
}
