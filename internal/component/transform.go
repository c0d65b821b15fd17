package component

import (
	"survivors/internal/behavior"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

const (
	CTransform ecs.ComponentType = 1
	CSprite    ecs.ComponentType = 3
)

// Transform places an entity in the world. Z orders drawing.
type Transform struct {
	Pos      vec.Vec2
	Z        float64
	Rotation float64
}

func (Transform) Type() ecs.ComponentType { return CTransform }

// Sprite is an entity's visual: a colored box, optionally drawn with a glyph.
type Sprite struct {
	Size  vec.Vec2
	Color behavior.Color
	Alpha float64
	Glyph string
}

func (Sprite) Type() ecs.ComponentType { return CSprite }

// Bounds returns the entity's axis-aligned box.
func Bounds(t Transform, s Sprite) vec.Rect {
	return vec.Rect{Center: t.Pos, Size: s.Size}
}
