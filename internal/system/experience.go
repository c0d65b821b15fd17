package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
)

// AttractOrbs pulls experience orbs within range toward the player.
func AttractOrbs(w *ecs.World, dt time.Duration) {
	p, ok := position(w, Player(w))
	if !ok {
		return
	}
	step := constant.XPOrbMovementSpeed * dt.Seconds()
	for _, id := range w.Query(component.CXPOrb, component.CTransform) {
		t := w.Get(id, component.CTransform).(component.Transform)
		offset := p.Pos.Sub(t.Pos)
		if offset.Length() >= constant.XPOrbAttractionRange {
			continue
		}
		t.Pos = t.Pos.Add(offset.Normalized().Mul(step))
		w.Add(id, t)
	}
}

// CollectOrbs credits orbs touching the player and levels the player up as
// often as the experience allows. Each level queues one powerup choice.
func CollectOrbs(w *ecs.World, res *Resources) {
	id := Player(w)
	p, ok := position(w, id)
	if !ok {
		return
	}
	xp, ok := w.Get(id, component.CExperience).(component.Experience)
	if !ok {
		return
	}
	collected := false
	for _, orb := range w.Query(component.CXPOrb, component.CTransform) {
		t := w.Get(orb, component.CTransform).(component.Transform)
		if p.Pos.Distance(t.Pos) >= constant.XPOrbCollectionRange {
			continue
		}
		xp.XP += w.Get(orb, component.CXPOrb).(component.XPOrb).Value
		w.DestroyEntity(orb)
		collected = true
	}
	if !collected {
		return
	}
	for xp.NextLevel > 0 && xp.XP >= xp.NextLevel {
		xp.XP -= xp.NextLevel
		xp.NextLevel = uint32(float64(xp.NextLevel) * constant.XPLevelScaling)
		xp.Level++
		res.PendingLevelUps++
		res.Log.WithFields(logrus.Fields{
			"level": xp.Level,
			"next":  xp.NextLevel,
		}).Info("player leveled up")
	}
	w.Add(id, xp)
}
