package factory

import (
	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

// ComposeWeapon spawns count instances of a weapon definition at level and
// returns them in creation order. Callers record the first as the primary.
func ComposeWeapon(w *ecs.World, def *definition.Weapon, weaponID string, count int, level uint32) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, count)
	for range count {
		id := w.CreateEntity()
		w.Add(id, component.Transform{Z: 1})
		w.Add(id, sprite(def.Visual))
		w.Add(id, component.WeaponID(weaponID))
		w.Add(id, component.WeaponName(def.Name))
		w.Add(id, component.WeaponLevel(level))
		attachBehaviors(w, id, def.Behaviors)
		if len(def.Upgrades) > 0 {
			w.Add(id, component.UpgradeBehaviors{List: def.Upgrades})
		}
		ids = append(ids, id)
	}
	return ids
}

// ComposeEnemy spawns one enemy at pos. healthScale multiplies the
// definition's health for wave scaling.
func ComposeEnemy(w *ecs.World, def *definition.Enemy, enemyID string, pos vec.Vec2, healthScale float64) ecs.EntityID {
	id := w.CreateEntity()
	health := def.Health * healthScale
	w.Add(id, component.Transform{Pos: pos})
	w.Add(id, sprite(def.Visual))
	w.Add(id, component.Enemy{ID: enemyID, XPValue: def.XPValue})
	w.Add(id, component.Damageable{Health: health, MaxHealth: health})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Collider{})
	w.Add(id, component.TagEnemy{})
	if def.Flying {
		w.Add(id, component.TagFlying{})
	} else {
		w.Add(id, component.Gravity{})
	}
	attachBehaviors(w, id, def.Behaviors)
	return id
}

func sprite(v definition.Visual) component.Sprite {
	return component.Sprite{Size: v.Size.Vec(), Color: v.Color, Alpha: 1, Glyph: v.Glyph}
}

// attachBehaviors adds one live component per behavior entry, plus the base
// stat snapshots the upgrade engine recomputes from.
func attachBehaviors(w *ecs.World, id ecs.EntityID, list behavior.List) {
	for _, b := range list {
		switch b := b.(type) {
		case behavior.Orbiting:
			w.Add(id, component.Orbiting{Radius: b.Radius, Speed: b.Speed})
		case behavior.FollowPlayer:
			w.Add(id, component.FollowPlayer{})
		case behavior.DamageOnContact:
			w.Add(id, component.DamageOnContact{Damage: b.Damage, DamageType: b.DamageType, Targets: b.Targets})
			w.Add(id, component.DamageStats{Base: b.Damage})
		case behavior.ProjectileSpawner:
			w.Add(id, component.ProjectileSpawner{
				Cooldown: charged(b.Cooldown),
				Template: component.ProjectileTemplate{
					Damage:   b.Damage,
					Speed:    b.Speed,
					Lifetime: b.Lifetime,
					Size:     b.ProjectileSize,
					Color:    b.ProjectileColor,
				},
				SpawnLogic: b.SpawnLogic,
				FireRange:  b.FireRange,
				EnergyCost: b.EnergyCost,
			})
			w.Add(id, component.DamageStats{Base: b.Damage})
			w.Add(id, component.CooldownStats{Base: b.Cooldown})
		case behavior.MeleeAttack:
			w.Add(id, component.MeleeAttack{
				Cooldown:       charged(b.Cooldown),
				DetectionRange: b.DetectionRange,
				Damage:         b.Damage,
				StunDuration:   b.StunDuration,
				KnockbackForce: b.KnockbackForce,
				AttackDuration: b.AttackDuration,
				HitboxSize:     b.HitboxSize,
				HitboxColor:    b.HitboxColor,
				EnergyCost:     b.EnergyCost,
			})
			w.Add(id, component.DamageStats{Base: b.Damage})
			w.Add(id, component.CooldownStats{Base: b.Cooldown})
			w.Add(id, component.EffectStats{Base: b.StunDuration})
		case behavior.SeekTarget:
			w.Add(id, component.SeekTarget{Target: b.Target, Speed: b.Speed})
		case behavior.ZigZagMovement:
			w.Add(id, component.ZigZagMovement{
				BaseSpeed:            b.BaseSpeed,
				OscillationSpeed:     b.OscillationSpeed,
				OscillationAmplitude: b.OscillationAmplitude,
			})
		case behavior.MaintainDistance:
			w.Add(id, component.MaintainDistance{
				Target:            b.Target,
				PreferredDistance: b.PreferredDistance,
				Speed:             b.Speed,
			})
		case behavior.ExplodeOnProximity:
			w.Add(id, component.ExplodeOnProximity{TriggerRange: b.TriggerRange, Damage: b.Damage, Targets: b.Targets})
		}
	}
}

// charged returns a cooldown timer that is already finished, so a fresh
// weapon can act on its first tick.
func charged(seconds float64) component.Timer {
	t := component.NewTimer(behavior.Seconds(seconds), component.Once)
	t.Tick(t.Duration)
	return t
}
