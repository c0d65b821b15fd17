package system

import (
	"math"
	"time"

	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
)

// ApplyGravity accelerates airborne entities downward, capped at terminal
// velocity.
func ApplyGravity(w *ecs.World, dt time.Duration) {
	for _, id := range w.Query(component.CGravity, component.CVelocity) {
		if w.Has(id, component.CGrounded) {
			continue
		}
		v := w.Get(id, component.CVelocity).(component.Velocity)
		v.Y = max(v.Y+constant.Gravity*dt.Seconds(), constant.TerminalVelocity)
		w.Add(id, v)
	}
}

// ApplyVelocity integrates positions.
func ApplyVelocity(w *ecs.World, dt time.Duration) {
	secs := dt.Seconds()
	for _, id := range w.Query(component.CVelocity, component.CTransform) {
		v := w.Get(id, component.CVelocity).(component.Velocity)
		if v.X == 0 && v.Y == 0 {
			continue
		}
		t := w.Get(id, component.CTransform).(component.Transform)
		t.Pos = t.Pos.Add(v.Mul(secs))
		w.Add(id, t)
	}
}

// LandOnPlatforms snaps falling entities onto the first platform whose top
// they have crossed during the last dt and marks them grounded. Entities moving up pass
// through platforms from below.
func LandOnPlatforms(w *ecs.World, dt time.Duration) {
	platforms := w.Query(component.CTagPlatform, component.CTransform, component.CSprite)
	for _, id := range w.Query(component.CGravity, component.CVelocity, component.CTransform, component.CSprite) {
		t := w.Get(id, component.CTransform).(component.Transform)
		box := component.Bounds(t, w.Get(id, component.CSprite).(component.Sprite))
		v := w.Get(id, component.CVelocity).(component.Velocity)
		w.Remove(id, component.CGrounded)
		if v.Y > 0 {
			continue
		}
		// Distance fallen this tick, so fast fallers cannot skip a platform.
		window := max(constant.GroundSnapDistance, -v.Y*dt.Seconds())

		for _, p := range platforms {
			ground := component.Bounds(
				w.Get(p, component.CTransform).(component.Transform),
				w.Get(p, component.CSprite).(component.Sprite),
			)
			if box.Right() <= ground.Left() || box.Left() >= ground.Right() {
				continue
			}
			top := ground.Top()
			if box.Bottom() > top || box.Bottom() <= top-window {
				continue
			}
			v.Y = 0
			t.Pos.Y = top + box.Size.Y/2
			w.Add(id, v)
			w.Add(id, t)
			w.Add(id, component.Grounded{})
			break
		}
	}
}

// SeparateColliders pushes overlapping colliders apart along the axis of
// least penetration, each moving half the overlap.
func SeparateColliders(w *ecs.World) {
	ids := w.Query(component.CCollider, component.CTransform, component.CSprite)
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			ta := w.Get(a, component.CTransform).(component.Transform)
			tb := w.Get(b, component.CTransform).(component.Transform)
			sa := w.Get(a, component.CSprite).(component.Sprite)
			sb := w.Get(b, component.CSprite).(component.Sprite)

			delta := tb.Pos.Sub(ta.Pos)
			overlapX := (sa.Size.X+sb.Size.X)/2 - math.Abs(delta.X)
			overlapY := (sa.Size.Y+sb.Size.Y)/2 - math.Abs(delta.Y)
			if overlapX <= 0 || overlapY <= 0 {
				continue
			}
			if overlapX < overlapY {
				push := overlapX / 2 * sign(delta.X)
				ta.Pos.X -= push
				tb.Pos.X += push
			} else {
				push := overlapY / 2 * sign(delta.Y)
				ta.Pos.Y -= push
				tb.Pos.Y += push
			}
			w.Add(a, ta)
			w.Add(b, tb)
		}
	}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
