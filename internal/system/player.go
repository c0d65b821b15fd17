package system

import (
	"time"

	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
)

// SelectSlot applies the slot keys from this tick's input.
func SelectSlot(res *Resources) {
	in := res.Input
	switch {
	case in.SelectMelee:
		res.Slot = SlotMelee
	case in.SelectRanged:
		res.Slot = SlotRanged
	case in.ToggleSlot:
		if res.Slot == SlotMelee {
			res.Slot = SlotRanged
		} else {
			res.Slot = SlotMelee
		}
	}
}

// MovePlayer turns input into horizontal velocity and jumps. The player
// accelerates toward full speed and decelerates to rest without input.
// A stunned or swinging player ignores input.
func MovePlayer(w *ecs.World, res *Resources, dt time.Duration) {
	id := Player(w)
	if id == ecs.NilEntity || stunned(w, id) || w.Has(id, component.CMeleeAttackState) {
		return
	}
	stats, ok := w.Get(id, component.CPlayerStats).(component.PlayerStats)
	if !ok {
		return
	}
	vel, ok := w.Get(id, component.CVelocity).(component.Velocity)
	if !ok {
		return
	}
	secs := dt.Seconds()

	dir := 0.0
	if res.Input.Left {
		dir--
	}
	if res.Input.Right {
		dir++
	}
	if dir != 0 {
		vel.X = approach(vel.X, dir*stats.Speed, constant.PlayerAcceleration*secs)
	} else {
		vel.X = approach(vel.X, 0, constant.PlayerDeceleration*secs)
	}

	if res.Input.Jump && w.Has(id, component.CGrounded) {
		vel.Y = stats.JumpForce
		w.Remove(id, component.CGrounded)
	}
	w.Add(id, vel)
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return min(v+step, target)
	}
	return max(v-step, target)
}

// RegenEnergy refills every energy pool up to its maximum.
func RegenEnergy(w *ecs.World, dt time.Duration) {
	for _, id := range w.Query(component.CEnergy) {
		e := w.Get(id, component.CEnergy).(component.Energy)
		if e.Current >= e.Max {
			continue
		}
		e.Current = min(e.Max, e.Current+e.Regen*dt.Seconds())
		w.Add(id, e)
	}
}

// spendEnergy deducts cost from the player's energy. A zero cost is free
// and succeeds even without an energy pool.
func spendEnergy(w *ecs.World, player ecs.EntityID, cost float64) bool {
	if cost <= 0 {
		return true
	}
	e, ok := w.Get(player, component.CEnergy).(component.Energy)
	if !ok || !e.Spend(cost) {
		return false
	}
	w.Add(player, e)
	return true
}
