package component

import "survivors/internal/ecs"

const (
	CDespawnOnTimer ecs.ComponentType = 31
	CAttachedTo     ecs.ComponentType = 32
)

// DespawnOnTimer destroys the entity when the timer finishes.
type DespawnOnTimer struct {
	Timer Timer
}

func (DespawnOnTimer) Type() ecs.ComponentType { return CDespawnOnTimer }

// AttachedTo ties an entity's lifetime to Parent.
type AttachedTo struct {
	Parent ecs.EntityID
}

func (AttachedTo) Type() ecs.ComponentType { return CAttachedTo }
