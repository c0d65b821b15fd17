package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
)

const (
	CSeekTarget         ecs.ComponentType = 27
	CZigZagMovement     ecs.ComponentType = 28
	CMaintainDistance   ecs.ComponentType = 29
	CExplodeOnProximity ecs.ComponentType = 30
)

type SeekTarget struct {
	Target behavior.TargetType
	Speed  float64
}

func (SeekTarget) Type() ecs.ComponentType { return CSeekTarget }

// ZigZagMovement weaves toward the player. Time accumulates seconds.
type ZigZagMovement struct {
	BaseSpeed            float64
	OscillationSpeed     float64
	OscillationAmplitude float64
	Time                 float64
}

func (ZigZagMovement) Type() ecs.ComponentType { return CZigZagMovement }

type MaintainDistance struct {
	Target            behavior.TargetType
	PreferredDistance float64
	Speed             float64
}

func (MaintainDistance) Type() ecs.ComponentType { return CMaintainDistance }

type ExplodeOnProximity struct {
	TriggerRange float64
	Damage       float64
	Targets      behavior.TargetFilter
}

func (ExplodeOnProximity) Type() ecs.ComponentType { return CExplodeOnProximity }
