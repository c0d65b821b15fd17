package component

import "survivors/internal/ecs"

const CDamageable ecs.ComponentType = 2

// Damageable is anything with health that the combat bridge may hurt.
type Damageable struct {
	Health, MaxHealth float64
}

func (Damageable) Type() ecs.ComponentType { return CDamageable }

// Dead reports whether health has run out.
func (d Damageable) Dead() bool { return d.Health <= 0 }
