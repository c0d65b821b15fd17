package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

const (
	CMeleeAttack      ecs.ComponentType = 24
	CMeleeAttackState ecs.ComponentType = 25
	CMeleeHitbox      ecs.ComponentType = 26
	CStunned          ecs.ComponentType = 7
)

// MeleeAttack is the idle half of the melee state machine.
type MeleeAttack struct {
	Cooldown       Timer
	DetectionRange float64
	Damage         float64
	StunDuration   float64
	KnockbackForce float64
	AttackDuration float64
	HitboxSize     behavior.Size
	HitboxColor    behavior.Color
	EnergyCost     float64
}

func (MeleeAttack) Type() ecs.ComponentType { return CMeleeAttack }

// MeleeAttackState lives on the attacker while a swing is in progress.
// Its numbers are a snapshot of the MeleeAttack at swing start.
type MeleeAttackState struct {
	Timer          Timer
	Damage         float64
	StunDuration   float64
	KnockbackForce float64
	HitboxSize     behavior.Size
	HitboxColor    behavior.Color
	Direction      vec.Vec2
	Targets        behavior.TargetFilter
	Hitbox         ecs.EntityID
}

func (MeleeAttackState) Type() ecs.ComponentType { return CMeleeAttackState }

// MeleeHitbox is the damage area of one swing. Hit holds every entity
// already damaged by it.
type MeleeHitbox struct {
	Owner          ecs.EntityID
	Damage         float64
	StunDuration   float64
	KnockbackForce float64
	Targets        behavior.TargetFilter
	Hit            []ecs.EntityID
}

func (MeleeHitbox) Type() ecs.ComponentType { return CMeleeHitbox }

// AlreadyHit reports whether id was damaged by this swing.
func (h MeleeHitbox) AlreadyHit(id ecs.EntityID) bool {
	for _, x := range h.Hit {
		if x == id {
			return true
		}
	}
	return false
}

// Stunned suppresses movement and attacks until its timer runs out.
type Stunned struct {
	Timer Timer
}

func (Stunned) Type() ecs.ComponentType { return CStunned }
