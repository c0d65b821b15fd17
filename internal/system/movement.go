package system

import (
	"math"
	"time"

	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

// FollowPlayer snaps anchored weapons that do not orbit onto the player.
func FollowPlayer(w *ecs.World) {
	p, ok := position(w, Player(w))
	if !ok {
		return
	}
	for _, id := range w.Query(component.CFollowPlayer, component.CTransform) {
		if w.Has(id, component.COrbiting) {
			continue
		}
		t := w.Get(id, component.CTransform).(component.Transform)
		t.Pos = p.Pos
		w.Add(id, t)
	}
}

// RedistributeOrbits spaces orbiting instances evenly around the circle
// whenever their count changes. Instance i of n gets angle 2πi/n.
func RedistributeOrbits(w *ecs.World, res *Resources) {
	ids := w.Query(component.COrbiting, component.CFollowPlayer)
	if len(ids) == res.OrbitCount {
		return
	}
	res.OrbitCount = len(ids)
	n := float64(len(ids))
	for i, id := range ids {
		o := w.Get(id, component.COrbiting).(component.Orbiting)
		o.Angle = float64(i) / n * 2 * math.Pi
		w.Add(id, o)
	}
}

// Orbit advances every orbiting instance around the player.
func Orbit(w *ecs.World, dt time.Duration) {
	p, ok := position(w, Player(w))
	if !ok {
		return
	}
	for _, id := range w.Query(component.COrbiting, component.CFollowPlayer, component.CTransform) {
		o := w.Get(id, component.COrbiting).(component.Orbiting)
		o.Angle += o.Speed * dt.Seconds()
		w.Add(id, o)

		t := w.Get(id, component.CTransform).(component.Transform)
		t.Pos = p.Pos.Add(vec.FromAngle(o.Angle).Mul(o.Radius))
		t.Rotation = o.Angle + math.Pi/2
		w.Add(id, t)
	}
}

// steer writes a movement velocity. Entities under gravity only steer
// horizontally so they keep falling and jumping normally.
func steer(w *ecs.World, id ecs.EntityID, v vec.Vec2) {
	vel, ok := w.Get(id, component.CVelocity).(component.Velocity)
	if !ok {
		return
	}
	vel.X = v.X
	if !w.Has(id, component.CGravity) {
		vel.Y = v.Y
	}
	w.Add(id, vel)
}

// SeekTargets moves seekers straight at their target at constant speed.
func SeekTargets(w *ecs.World) {
	for _, id := range w.Query(component.CSeekTarget, component.CTransform, component.CVelocity) {
		if stunned(w, id) {
			continue
		}
		s := w.Get(id, component.CSeekTarget).(component.SeekTarget)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		tgt, ok := resolveTarget(w, id, pos, s.Target)
		if !ok {
			continue
		}
		steer(w, id, tgt.Pos.Sub(pos).Normalized().Mul(s.Speed))
	}
}

// ZigZag weaves entities toward the player, oscillating perpendicular to
// the line between them.
func ZigZag(w *ecs.World, dt time.Duration) {
	p, ok := position(w, Player(w))
	if !ok {
		return
	}
	for _, id := range w.Query(component.CZigZagMovement, component.CTransform, component.CVelocity) {
		if stunned(w, id) {
			continue
		}
		z := w.Get(id, component.CZigZagMovement).(component.ZigZagMovement)
		z.Time += dt.Seconds()
		w.Add(id, z)

		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		toward := p.Pos.Sub(pos).Normalized()
		sway := math.Sin(z.Time*z.OscillationSpeed) * z.OscillationAmplitude
		dir := toward.Add(toward.Perp().Mul(sway)).Normalized()
		steer(w, id, dir.Mul(z.BaseSpeed))
	}
}

// MaintainDistance keeps entities near their preferred distance from the
// target: approach when too far, retreat when too close, hold inside the
// dead band.
func MaintainDistance(w *ecs.World) {
	for _, id := range w.Query(component.CMaintainDistance, component.CTransform, component.CVelocity) {
		if stunned(w, id) {
			continue
		}
		m := w.Get(id, component.CMaintainDistance).(component.MaintainDistance)
		pos := w.Get(id, component.CTransform).(component.Transform).Pos
		tgt, ok := resolveTarget(w, id, pos, m.Target)
		if !ok {
			continue
		}
		offset := tgt.Pos.Sub(pos)
		dist := offset.Length()
		dir := offset.Normalized()
		switch {
		case dist > m.PreferredDistance+constant.MaintainDistanceDeadBand:
			steer(w, id, dir.Mul(m.Speed))
		case dist < m.PreferredDistance-constant.MaintainDistanceDeadBand:
			steer(w, id, dir.Mul(-m.Speed))
		default:
			steer(w, id, vec.Zero)
		}
	}
}
