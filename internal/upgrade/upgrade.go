// Package upgrade recomputes weapon stats when levels change and owns every
// level write after a weapon is composed.
package upgrade

import (
	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/inventory"
)

// Watch enables level change detection on w. Call it before composing weapons.
func Watch(w *ecs.World) {
	w.Track(component.CWeaponLevel)
}

// Report summarizes one Apply pass.
type Report struct {
	Upgraded int
	Spawned  []ecs.EntityID
}

// Apply walks the upgrade list of every weapon whose level changed since the
// last pass and recomputes its stats from the base snapshots. weapons may be
// nil, in which case additional instances are not spawned.
func Apply(w *ecs.World, inv *inventory.Inventory, weapons *definition.WeaponRegistry) Report {
	var rep Report
	for _, ch := range w.TakeChanges(component.CWeaponLevel) {
		id := ch.ID
		level := w.Get(id, component.CWeaponLevel).(component.WeaponLevel)
		ub, ok := w.Get(id, component.CUpgradeBehaviors).(component.UpgradeBehaviors)
		if !ok {
			continue
		}
		applyStats(w, id, uint32(level), ub.List)
		rep.Upgraded++

		if !ub.List.Has(behavior.SpawnAdditionalEntity{}) || weapons == nil {
			continue
		}
		weaponID, ok := w.Get(id, component.CWeaponID).(component.WeaponID)
		if !ok || !inv.IsPrimary(string(weaponID), id) {
			continue
		}
		missing := int(level) - countInstances(w, weaponID)
		if missing <= 0 {
			continue
		}
		def, ok := weapons.Resolve(string(weaponID))
		if !ok {
			continue
		}
		// Top up to one instance per level, already at the current level so
		// the new instances never trigger a spawn themselves.
		spawned := factory.ComposeWeapon(w, def, string(weaponID), missing, uint32(level))
		for _, s := range spawned {
			applyStats(w, s, uint32(level), ub.List)
		}
		rep.Spawned = append(rep.Spawned, spawned...)
	}
	return rep
}

// countInstances returns how many living entities carry weaponID.
func countInstances(w *ecs.World, weaponID component.WeaponID) int {
	n := 0
	for _, id := range w.Query(component.CWeaponID) {
		if w.Get(id, component.CWeaponID).(component.WeaponID) == weaponID {
			n++
		}
	}
	return n
}

func applyStats(w *ecs.World, id ecs.EntityID, level uint32, list behavior.UpgradeList) {
	for _, u := range list {
		switch u := u.(type) {
		case behavior.ScaleDamage:
			if ds, ok := w.Get(id, component.CDamageStats).(component.DamageStats); ok {
				setDamage(w, id, u.Scale(ds.Base, level))
			}
		case behavior.ReduceCooldown:
			if cs, ok := w.Get(id, component.CCooldownStats).(component.CooldownStats); ok {
				setCooldown(w, id, cs.Base*u.Multiplier(level))
			}
		case behavior.IncreaseEffect:
			if es, ok := w.Get(id, component.CEffectStats).(component.EffectStats); ok {
				if ma, ok := w.Get(id, component.CMeleeAttack).(component.MeleeAttack); ok {
					ma.StunDuration = u.Scale(es.Base, level)
					w.Add(id, ma)
				}
			}
		}
	}
}

// setDamage writes damage into every damage-bearing behavior on id.
func setDamage(w *ecs.World, id ecs.EntityID, dmg float64) {
	if c, ok := w.Get(id, component.CDamageOnContact).(component.DamageOnContact); ok {
		c.Damage = dmg
		w.Add(id, c)
	}
	if ps, ok := w.Get(id, component.CProjectileSpawner).(component.ProjectileSpawner); ok {
		ps.Template.Damage = dmg
		w.Add(id, ps)
	}
	if ma, ok := w.Get(id, component.CMeleeAttack).(component.MeleeAttack); ok {
		ma.Damage = dmg
		w.Add(id, ma)
	}
}

func setCooldown(w *ecs.World, id ecs.EntityID, seconds float64) {
	d := behavior.Seconds(seconds)
	if ps, ok := w.Get(id, component.CProjectileSpawner).(component.ProjectileSpawner); ok {
		ps.Cooldown.SetDuration(d)
		w.Add(id, ps)
	}
	if ma, ok := w.Get(id, component.CMeleeAttack).(component.MeleeAttack); ok {
		ma.Cooldown.SetDuration(d)
		w.Add(id, ma)
	}
}

// SyncStats makes every instance of a weapon deal the contact damage of its
// highest-level instance.
func SyncStats(w *ecs.World) {
	ids := w.Query(component.CWeaponID, component.CWeaponLevel, component.CDamageStats, component.CDamageOnContact)
	top := make(map[component.WeaponID]component.WeaponLevel)
	for _, id := range ids {
		wid := w.Get(id, component.CWeaponID).(component.WeaponID)
		lvl := w.Get(id, component.CWeaponLevel).(component.WeaponLevel)
		if lvl > top[wid] {
			top[wid] = lvl
		}
	}
	for _, id := range ids {
		wid := w.Get(id, component.CWeaponID).(component.WeaponID)
		base := w.Get(id, component.CDamageStats).(component.DamageStats).Base
		c := w.Get(id, component.CDamageOnContact).(component.DamageOnContact)
		gained := max(top[wid], 1) - 1
		c.Damage = base * (1 + float64(gained)*constant.WeaponDamageIncreasePerLevel)
		w.Add(id, c)
	}
}
