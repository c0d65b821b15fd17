package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
)

const CProjectileSpawner ecs.ComponentType = 23

// ProjectileTemplate is what every projectile from a spawner is built from.
type ProjectileTemplate struct {
	Damage   float64
	Speed    float64
	Lifetime float64
	Size     behavior.Size
	Color    behavior.Color
}

type ProjectileSpawner struct {
	Cooldown   Timer
	Template   ProjectileTemplate
	SpawnLogic behavior.SpawnLogic
	FireRange  *float64
	EnergyCost float64
}

func (ProjectileSpawner) Type() ecs.ComponentType { return CProjectileSpawner }
