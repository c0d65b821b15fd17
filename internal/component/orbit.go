package component

import "survivors/internal/ecs"

const (
	COrbiting     ecs.ComponentType = 20
	CFollowPlayer ecs.ComponentType = 21
)

// Orbiting circles the player at Radius, advancing Angle by Speed rad/s.
type Orbiting struct {
	Radius, Speed, Angle float64
}

func (Orbiting) Type() ecs.ComponentType { return COrbiting }

// FollowPlayer anchors an entity to the player.
type FollowPlayer struct{}

func (FollowPlayer) Type() ecs.ComponentType { return CFollowPlayer }
