package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/telemetry"
)

// damage subtracts amount from id's health.
func damage(w *ecs.World, res *Resources, id ecs.EntityID, amount float64) {
	d, ok := w.Get(id, component.CDamageable).(component.Damageable)
	if !ok {
		return
	}
	d.Health -= amount
	w.Add(id, d)
	res.Metrics.DamageDealt(telemetry.FactionOf(enemyOwned(w, id)), amount)
}

// ContactDamage applies every DamageOnContact source to the eligible
// entities it overlaps. Continuous sources deal damage per second; one-time
// sources hit the first overlapping target and are destroyed.
func ContactDamage(w *ecs.World, res *Resources, dt time.Duration) {
	for _, src := range w.Query(component.CDamageOnContact, component.CTransform, component.CSprite) {
		if !w.Alive(src) {
			continue
		}
		c := w.Get(src, component.CDamageOnContact).(component.DamageOnContact)
		box := component.Bounds(
			w.Get(src, component.CTransform).(component.Transform),
			w.Get(src, component.CSprite).(component.Sprite),
		)

		for _, id := range w.Query(component.CDamageable, component.CTransform, component.CSprite) {
			if id == src || !eligible(w, id, c.Targets) {
				continue
			}
			other := component.Bounds(
				w.Get(id, component.CTransform).(component.Transform),
				w.Get(id, component.CSprite).(component.Sprite),
			)
			if !box.Overlaps(other) {
				continue
			}
			if c.DamageType == behavior.OneTime {
				damage(w, res, id, c.Damage)
				Despawn(w, src)
				break
			}
			damage(w, res, id, c.Damage*dt.Seconds())
		}
	}
}

// Explode detonates entities whose first eligible target comes within
// trigger range. The bomber dies in the blast.
func Explode(w *ecs.World, res *Resources) {
	for _, id := range w.Query(component.CExplodeOnProximity, component.CTransform) {
		if !w.Alive(id) || stunned(w, id) {
			continue
		}
		e := w.Get(id, component.CExplodeOnProximity).(component.ExplodeOnProximity)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		for _, tgt := range w.Query(component.CDamageable, component.CTransform) {
			if tgt == id || !eligible(w, tgt, e.Targets) {
				continue
			}
			if pos.Distance(w.Get(tgt, component.CTransform).(component.Transform).Pos) > e.TriggerRange {
				continue
			}
			damage(w, res, tgt, e.Damage)
			factory.NewExplosionMarker(w, pos)
			Despawn(w, id)
			break
		}
	}
}

// Deaths turns dead enemies into experience orbs and flags the player's
// death. It runs after every damage source for the tick.
func Deaths(w *ecs.World, res *Resources) {
	for _, id := range w.Query(component.CDamageable, component.CTagEnemy, component.CTransform) {
		d := w.Get(id, component.CDamageable).(component.Damageable)
		if !d.Dead() {
			continue
		}
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		en, _ := w.Get(id, component.CEnemy).(component.Enemy)
		factory.NewXPOrb(w, pos, en.XPValue)
		Despawn(w, id)
		res.Kills++
		res.Metrics.EnemyKilled(en.ID)
	}

	p := Player(w)
	if p == ecs.NilEntity || res.PlayerDead {
		return
	}
	if d, ok := w.Get(p, component.CDamageable).(component.Damageable); ok && d.Dead() {
		res.PlayerDead = true
		res.Log.WithFields(logrus.Fields{
			"kills":   res.Kills,
			"wave":    res.Waves.Wave,
			"elapsed": res.Elapsed.Round(time.Second),
		}).Info("player died")
	}
}

// DespawnExpired destroys entities whose despawn timer has finished.
func DespawnExpired(w *ecs.World, dt time.Duration) {
	for _, id := range w.Query(component.CDespawnOnTimer) {
		d := w.Get(id, component.CDespawnOnTimer).(component.DespawnOnTimer)
		d.Timer.Tick(dt)
		if d.Timer.Finished() {
			Despawn(w, id)
			continue
		}
		w.Add(id, d)
	}
}

// Despawn destroys id together with everything attached to it.
func Despawn(w *ecs.World, id ecs.EntityID) {
	for _, child := range w.Query(component.CAttachedTo) {
		if w.Get(child, component.CAttachedTo).(component.AttachedTo).Parent == id {
			Despawn(w, child)
		}
	}
	w.DestroyEntity(id)
}
