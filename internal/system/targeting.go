package system

import (
	"math"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

// target is a candidate found by a targeting query.
type target struct {
	ID  ecs.EntityID
	Pos vec.Vec2
}

// eligible reports whether id is a damageable entity the filter accepts.
func eligible(w *ecs.World, id ecs.EntityID, filter behavior.TargetFilter) bool {
	if !w.Has(id, component.CDamageable) {
		return false
	}
	return filter.Matches(w.Has(id, component.CTagPlayer), w.Has(id, component.CTagEnemy))
}

// nearest returns the closest eligible entity to from, skipping self. A nil
// maxRange means unlimited; a target exactly at maxRange is in range. Ties go
// to the entity created first.
func nearest(w *ecs.World, from vec.Vec2, filter behavior.TargetFilter, self ecs.EntityID, maxRange *float64) (target, bool) {
	best := target{ID: ecs.NilEntity}
	bestDist := math.Inf(1)
	for _, id := range w.Query(component.CDamageable, component.CTransform) {
		if id == self || !eligible(w, id, filter) {
			continue
		}
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		d := from.Distance(pos)
		if maxRange != nil && d > *maxRange {
			continue
		}
		if d < bestDist {
			best = target{ID: id, Pos: pos}
			bestDist = d
		}
	}
	return best, best.ID != ecs.NilEntity
}

// resolveTarget finds where a movement behavior on self is headed.
func resolveTarget(w *ecs.World, self ecs.EntityID, from vec.Vec2, t behavior.TargetType) (target, bool) {
	if t == behavior.TargetPlayer {
		id := Player(w)
		if id == ecs.NilEntity || id == self {
			return target{}, false
		}
		pos, _ := position(w, id)
		return target{ID: id, Pos: pos.Pos}, true
	}
	return nearest(w, from, behavior.Enemies, self, nil)
}

// attacker returns the entity a weapon acts from: enemies act from
// themselves, player weapons from the player.
func attacker(w *ecs.World, weapon ecs.EntityID) (ecs.EntityID, bool) {
	if enemyOwned(w, weapon) {
		return weapon, true
	}
	p := Player(w)
	return p, p != ecs.NilEntity
}
