package component

import (
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

const (
	CVelocity ecs.ComponentType = 4
	CGravity  ecs.ComponentType = 5
	CGrounded ecs.ComponentType = 6
	CCollider ecs.ComponentType = 39
)

type Velocity struct {
	vec.Vec2
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

// Gravity makes the physics pass pull the entity down.
type Gravity struct{}

func (Gravity) Type() ecs.ComponentType { return CGravity }

// Grounded is present while the entity stands on a platform.
type Grounded struct{}

func (Grounded) Type() ecs.ComponentType { return CGrounded }

// Collider entities are pushed apart from each other horizontally.
type Collider struct{}

func (Collider) Type() ecs.ComponentType { return CCollider }
