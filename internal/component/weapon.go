package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
)

const (
	CWeaponID         ecs.ComponentType = 12
	CWeaponName       ecs.ComponentType = 13
	CWeaponLevel      ecs.ComponentType = 14
	CDamageStats      ecs.ComponentType = 15
	CCooldownStats    ecs.ComponentType = 16
	CEffectStats      ecs.ComponentType = 17
	CUpgradeBehaviors ecs.ComponentType = 18
)

// WeaponID is the definition ID a weapon instance was composed from.
type WeaponID string

func (WeaponID) Type() ecs.ComponentType { return CWeaponID }

type WeaponName string

func (WeaponName) Type() ecs.ComponentType { return CWeaponName }

// WeaponLevel is written by the composer once and by the upgrade engine after.
type WeaponLevel uint32

func (WeaponLevel) Type() ecs.ComponentType { return CWeaponLevel }

// DamageStats is the damage captured at composition. Never mutated.
type DamageStats struct {
	Base float64
}

func (DamageStats) Type() ecs.ComponentType { return CDamageStats }

// CooldownStats is the cooldown in seconds captured at composition.
type CooldownStats struct {
	Base float64
}

func (CooldownStats) Type() ecs.ComponentType { return CCooldownStats }

// EffectStats is the effect magnitude captured at composition (melee stun seconds).
type EffectStats struct {
	Base float64
}

func (EffectStats) Type() ecs.ComponentType { return CEffectStats }

// UpgradeBehaviors is the definition's upgrade list, shared read-only.
type UpgradeBehaviors struct {
	List behavior.UpgradeList
}

func (UpgradeBehaviors) Type() ecs.ComponentType { return CUpgradeBehaviors }
