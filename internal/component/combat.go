package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
)

const CDamageOnContact ecs.ComponentType = 22

// DamageOnContact hurts overlapping entities that match Targets.
type DamageOnContact struct {
	Damage     float64
	DamageType behavior.DamageType
	Targets    behavior.TargetFilter
}

func (DamageOnContact) Type() ecs.ComponentType { return CDamageOnContact }
