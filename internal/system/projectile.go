package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/telemetry"
	"survivors/internal/vec"
)

// FireProjectiles runs every projectile spawner. A spawner cools down while
// its timer runs and stays ready once it has finished, firing on the first
// tick a direction is available. Player spawners only fire with the ranged
// slot selected and pay their energy cost; without a target in range or
// enough energy the cooldown is not consumed.
func FireProjectiles(w *ecs.World, res *Resources, dt time.Duration) {
	for _, id := range w.Query(component.CProjectileSpawner) {
		ps := w.Get(id, component.CProjectileSpawner).(component.ProjectileSpawner)
		if !ps.Cooldown.Finished() {
			ps.Cooldown.Tick(dt)
			w.Add(id, ps)
			continue
		}

		enemy := enemyOwned(w, id)
		if !enemy && res.Slot != SlotRanged {
			continue
		}
		from, ok := attacker(w, id)
		if !ok || stunned(w, from) {
			continue
		}
		origin, ok := position(w, from)
		if !ok {
			continue
		}
		targets := behavior.Opposite(enemy)
		dir, ok := aim(w, ps, from, origin.Pos, targets)
		if !ok {
			continue
		}
		if !enemy && !spendEnergy(w, from, ps.EnergyCost) {
			continue
		}

		ps.Cooldown.Reset()
		w.Add(id, ps)
		p := factory.NewProjectile(w, origin.Pos, dir, ps.Template, targets)
		res.Metrics.ProjectileFired(telemetry.FactionOf(enemy))
		res.Log.WithFields(logrus.Fields{
			"weapon":     id,
			"projectile": p,
		}).Trace("projectile fired")
	}
}

// aim picks the unit direction a spawner fires in.
func aim(w *ecs.World, ps component.ProjectileSpawner, self ecs.EntityID, from vec.Vec2, targets behavior.TargetFilter) (vec.Vec2, bool) {
	switch ps.SpawnLogic.Mode {
	case behavior.PlayerDirection:
		return vec.Right, true
	case behavior.Fixed:
		return vec.Vec2{X: ps.SpawnLogic.DX, Y: ps.SpawnLogic.DY}.NormalizedOr(vec.Right), true
	}
	tgt, ok := nearest(w, from, targets, self, ps.FireRange)
	if !ok {
		return vec.Vec2{}, false
	}
	return tgt.Pos.Sub(from).NormalizedOr(vec.Right), true
}
