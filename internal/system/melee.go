package system

import (
	"time"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/telemetry"
	"survivors/internal/vec"
)

// DetectMelee starts a swing for every ready melee weapon with a target in
// detection range. The swing state goes on the attacker, which holds at most
// one swing at a time. Player weapons only swing with the melee slot
// selected and pay their energy cost up front.
func DetectMelee(w *ecs.World, res *Resources, dt time.Duration) {
	for _, id := range w.Query(component.CMeleeAttack) {
		ma := w.Get(id, component.CMeleeAttack).(component.MeleeAttack)
		if !ma.Cooldown.Finished() {
			ma.Cooldown.Tick(dt)
			w.Add(id, ma)
		}

		enemy := enemyOwned(w, id)
		if !enemy && res.Slot != SlotMelee {
			continue
		}
		from, ok := attacker(w, id)
		if !ok || stunned(w, from) || w.Has(from, component.CMeleeAttackState) {
			continue
		}
		origin, ok := position(w, from)
		if !ok {
			continue
		}
		targets := behavior.Opposite(enemy)
		tgt, ok := nearest(w, origin.Pos, targets, from, &ma.DetectionRange)
		if !ok || !ma.Cooldown.Finished() {
			continue
		}
		if !enemy && !spendEnergy(w, from, ma.EnergyCost) {
			continue
		}

		ma.Cooldown.Reset()
		w.Add(id, ma)
		w.Add(from, component.MeleeAttackState{
			Timer:          component.NewTimer(behavior.Seconds(ma.AttackDuration), component.Once),
			Damage:         ma.Damage,
			StunDuration:   ma.StunDuration,
			KnockbackForce: ma.KnockbackForce,
			HitboxSize:     ma.HitboxSize,
			HitboxColor:    ma.HitboxColor,
			Direction:      tgt.Pos.Sub(origin.Pos).NormalizedOr(vec.Right),
			Targets:        targets,
			Hitbox:         ecs.NilEntity,
		})
		res.Metrics.MeleeSwing(telemetry.FactionOf(enemy))
	}
}

// ExecuteMelee advances every swing in progress: it makes sure the hitbox
// exists, lunges the attacker at the nearest target and ends the swing when
// its timer runs out.
func ExecuteMelee(w *ecs.World, dt time.Duration) {
	for _, id := range w.Query(component.CMeleeAttackState, component.CTransform) {
		st := w.Get(id, component.CMeleeAttackState).(component.MeleeAttackState)
		st.Timer.Tick(dt)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos

		if st.Timer.Finished() {
			if st.Hitbox != ecs.NilEntity {
				w.DestroyEntity(st.Hitbox)
			}
			steer(w, id, vec.Zero)
			w.Remove(id, component.CMeleeAttackState)
			continue
		}
		if st.Hitbox == ecs.NilEntity || !w.Alive(st.Hitbox) {
			st.Hitbox = factory.NewHitbox(w, id, pos, st)
		}

		if tgt, ok := nearest(w, pos, st.Targets, id, nil); ok {
			offset := tgt.Pos.Sub(pos)
			if offset.Length() > constant.MeleeStopDistance {
				st.Direction = offset.Normalized()
				lunge(w, id, st.Direction.Mul(constant.MeleeTrackingSpeed))
			} else {
				lunge(w, id, vec.Zero)
			}
		}
		w.Add(id, st)
	}
}

// lunge overrides both velocity axes, gravity or not.
func lunge(w *ecs.World, id ecs.EntityID, v vec.Vec2) {
	if w.Has(id, component.CVelocity) {
		w.Add(id, component.Velocity{Vec2: v})
	}
}

// UpdateHitboxes keeps hitboxes on their owner and applies each swing's
// damage, knockback and stun at most once per target. Hitboxes whose swing
// has ended are removed.
func UpdateHitboxes(w *ecs.World, res *Resources) {
	for _, hb := range w.Query(component.CMeleeHitbox, component.CTransform, component.CSprite) {
		h := w.Get(hb, component.CMeleeHitbox).(component.MeleeHitbox)
		owner, ok := position(w, h.Owner)
		if !ok || !w.Has(h.Owner, component.CMeleeAttackState) {
			w.DestroyEntity(hb)
			continue
		}
		t := w.Get(hb, component.CTransform).(component.Transform)
		t.Pos = owner.Pos
		w.Add(hb, t)
		box := component.Bounds(t, w.Get(hb, component.CSprite).(component.Sprite))

		for _, id := range w.Query(component.CDamageable, component.CTransform, component.CSprite) {
			if id == h.Owner || h.AlreadyHit(id) || !eligible(w, id, h.Targets) {
				continue
			}
			tt := w.Get(id, component.CTransform).(component.Transform)
			if !box.Overlaps(component.Bounds(tt, w.Get(id, component.CSprite).(component.Sprite))) {
				continue
			}
			damage(w, res, id, h.Damage)
			lunge(w, id, tt.Pos.Sub(owner.Pos).Normalized().Mul(h.KnockbackForce))
			w.Add(id, component.Stunned{
				Timer: component.NewTimer(behavior.Seconds(h.StunDuration), component.Once),
			})
			h.Hit = append(h.Hit, id)
		}
		w.Add(hb, h)
	}
}

// TickStuns removes stuns whose timer has run out.
func TickStuns(w *ecs.World, dt time.Duration) {
	for _, id := range w.Query(component.CStunned) {
		s := w.Get(id, component.CStunned).(component.Stunned)
		s.Timer.Tick(dt)
		if s.Timer.Finished() {
			w.Remove(id, component.CStunned)
			continue
		}
		w.Add(id, s)
	}
}
