package component

import "survivors/internal/ecs"

const (
	CPlayerStats ecs.ComponentType = 33
	CEnergy      ecs.ComponentType = 34
	CExperience  ecs.ComponentType = 35
)

// PlayerStats holds the movement numbers stat boosts modify.
type PlayerStats struct {
	Speed     float64
	JumpForce float64
}

func (PlayerStats) Type() ecs.ComponentType { return CPlayerStats }

// Energy is spent by melee swings and projectile spawners with a cost.
type Energy struct {
	Current, Max, Regen float64
}

func (Energy) Type() ecs.ComponentType { return CEnergy }

// Spend deducts cost if enough energy is available.
func (e *Energy) Spend(cost float64) bool {
	if e.Current < cost {
		return false
	}
	e.Current -= cost
	return true
}

type Experience struct {
	Level     uint32
	XP        uint32
	NextLevel uint32
}

func (Experience) Type() ecs.ComponentType { return CExperience }
