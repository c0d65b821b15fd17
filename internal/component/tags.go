package component

import "survivors/internal/ecs"

const (
	CTagPlayer     ecs.ComponentType = 8
	CTagEnemy      ecs.ComponentType = 9
	CTagProjectile ecs.ComponentType = 10
	CTagPlatform   ecs.ComponentType = 11
	CTagFlying     ecs.ComponentType = 37
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks hostile entities. Weapons living on an enemy are enemy-owned.
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }

// TagProjectile marks spawned projectiles.
type TagProjectile struct{}

func (TagProjectile) Type() ecs.ComponentType { return CTagProjectile }

// TagPlatform marks static ground the physics pass snaps onto.
type TagPlatform struct{}

func (TagPlatform) Type() ecs.ComponentType { return CTagPlatform }

// TagFlying marks enemies that ignore gravity.
type TagFlying struct{}

func (TagFlying) Type() ecs.ComponentType { return CTagFlying }
