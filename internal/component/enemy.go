package component

import "survivors/internal/ecs"

const (
	CEnemy ecs.ComponentType = 36
	CXPOrb ecs.ComponentType = 38
)

// Enemy records which definition an enemy came from and what it drops.
type Enemy struct {
	ID      string
	XPValue uint32
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }

// XPOrb is dropped on enemy death and collected by the player.
type XPOrb struct {
	Value uint32
}

func (XPOrb) Type() ecs.ComponentType { return CXPOrb }
