package factory

import (
	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

var (
	playerColor   = behavior.Color{R: 0.2, G: 0.4, B: 0.9}
	platformColor = behavior.Color{R: 0.3, G: 0.3, B: 0.3}
	orbColor      = behavior.Color{R: 0.9, G: 0.7, B: 0.2}
	blastColor    = behavior.Color{R: 1, G: 0.6, B: 0.1}
)

// NewPlayer creates the player entity at the spawn point.
func NewPlayer(w *ecs.World) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: vec.Vec2{X: constant.PlayerSpawnX, Y: constant.PlayerSpawnY}})
	w.Add(id, component.Sprite{
		Size:  vec.Vec2{X: constant.PlayerWidth, Y: constant.PlayerHeight},
		Color: playerColor,
		Alpha: 1,
		Glyph: "🧙",
	})
	w.Add(id, component.Damageable{Health: constant.PlayerHealth, MaxHealth: constant.PlayerHealth})
	w.Add(id, component.PlayerStats{Speed: constant.PlayerSpeed, JumpForce: constant.PlayerJumpForce})
	w.Add(id, component.Energy{
		Current: constant.PlayerEnergy,
		Max:     constant.PlayerEnergy,
		Regen:   constant.PlayerEnergyRegen,
	})
	w.Add(id, component.Experience{Level: 1, NextLevel: constant.InitialXPToNextLevel})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Gravity{})
	w.Add(id, component.Collider{})
	w.Add(id, component.TagPlayer{})
	return id
}

// NewPlatform creates a static platform centered at pos.
func NewPlatform(w *ecs.World, pos, size vec.Vec2) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: pos})
	w.Add(id, component.Sprite{Size: size, Color: platformColor, Alpha: 1})
	w.Add(id, component.TagPlatform{})
	return id
}

// NewPlatforms lays out the ground and the two stair cases meeting at the
// top platform.
func NewPlatforms(w *ecs.World) []ecs.EntityID {
	ground := vec.Vec2{X: 2000, Y: 40}
	stair := vec.Vec2{X: 150, Y: 20}
	top := vec.Vec2{X: 200, Y: 20}
	layout := []struct{ pos, size vec.Vec2 }{
		{vec.Vec2{X: 0, Y: -300}, ground},
		{vec.Vec2{X: -200, Y: -240}, stair},
		{vec.Vec2{X: -400, Y: -180}, stair},
		{vec.Vec2{X: -200, Y: -120}, stair},
		{vec.Vec2{X: 200, Y: -240}, stair},
		{vec.Vec2{X: 400, Y: -180}, stair},
		{vec.Vec2{X: 200, Y: -120}, stair},
		{vec.Vec2{X: 0, Y: -60}, top},
	}
	ids := make([]ecs.EntityID, 0, len(layout))
	for _, p := range layout {
		ids = append(ids, NewPlatform(w, p.pos, p.size))
	}
	return ids
}

// NewProjectile fires a projectile from origin along dir, which must be a
// unit vector.
func NewProjectile(w *ecs.World, origin, dir vec.Vec2, t component.ProjectileTemplate, targets behavior.TargetFilter) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{
		Pos:      origin.Add(dir.Mul(constant.ProjectileSpawnOffset)),
		Rotation: dir.Angle(),
	})
	w.Add(id, component.Sprite{Size: t.Size.Vec(), Color: t.Color, Alpha: 1, Glyph: "•"})
	w.Add(id, component.Velocity{Vec2: dir.Mul(t.Speed)})
	w.Add(id, component.DamageOnContact{Damage: t.Damage, DamageType: behavior.OneTime, Targets: targets})
	w.Add(id, component.DespawnOnTimer{Timer: component.NewTimer(behavior.Seconds(t.Lifetime), component.Once)})
	w.Add(id, component.TagProjectile{})
	return id
}

// NewHitbox creates the damage area of a melee swing centered on the attacker.
func NewHitbox(w *ecs.World, owner ecs.EntityID, at vec.Vec2, st component.MeleeAttackState) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: at, Z: 2})
	w.Add(id, component.Sprite{
		Size:  st.HitboxSize.Vec(),
		Color: st.HitboxColor,
		Alpha: constant.MeleeHitboxAlpha,
	})
	w.Add(id, component.MeleeHitbox{
		Owner:          owner,
		Damage:         st.Damage,
		StunDuration:   st.StunDuration,
		KnockbackForce: st.KnockbackForce,
		Targets:        st.Targets,
	})
	w.Add(id, component.AttachedTo{Parent: owner})
	return id
}

// NewXPOrb drops an experience orb worth value at pos.
func NewXPOrb(w *ecs.World, pos vec.Vec2, value uint32) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: pos})
	w.Add(id, component.Sprite{
		Size:  vec.Vec2{X: constant.XPOrbSize, Y: constant.XPOrbSize},
		Color: orbColor,
		Alpha: 1,
		Glyph: "✨",
	})
	w.Add(id, component.XPOrb{Value: value})
	return id
}

// NewExplosionMarker spawns a short-lived blast visual at pos.
func NewExplosionMarker(w *ecs.World, pos vec.Vec2) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: pos, Z: 3})
	w.Add(id, component.Sprite{
		Size:  vec.Vec2{X: constant.ExplosionMarkerSize, Y: constant.ExplosionMarkerSize},
		Color: blastColor,
		Alpha: 0.6,
		Glyph: "💥",
	})
	w.Add(id, component.DespawnOnTimer{Timer: component.NewTimer(constant.ExplosionMarkerLife, component.Once)})
	return id
}
