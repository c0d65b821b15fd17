package system

import (
	"testing"
	"time"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

func newSword(w *ecs.World, cost float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.MeleeAttack{
		Cooldown:       ready(time.Second),
		DetectionRange: 100,
		Damage:         30,
		StunDuration:   0.5,
		KnockbackForce: 200,
		AttackDuration: 0.2,
		HitboxSize:     behavior.Size{W: 60, H: 60},
		EnergyCost:     cost,
	})
	return id
}

func TestMeleeSwingLifecycle(t *testing.T) {
	w := ecs.NewWorld()
	res := bareResources()
	res.Slot = SlotMelee
	p := placePlayer(w, vec.Vec2{})
	enemy := placeEnemy(w, vec.Vec2{X: 40}, 100)
	sword := newSword(w, 10)

	DetectMelee(w, res, tick)
	st, ok := w.Get(p, component.CMeleeAttackState).(component.MeleeAttackState)
	if !ok {
		t.Fatal("player must be swinging")
	}
	if !near(st.Direction.X, 1) || st.Targets != behavior.Enemies {
		t.Errorf("swing = %+v; want toward +X against enemies", st)
	}
	if e := w.Get(p, component.CEnergy).(component.Energy); !near(e.Current, 90) {
		t.Errorf("energy = %v; want 90", e.Current)
	}
	if w.Get(sword, component.CMeleeAttack).(component.MeleeAttack).Cooldown.Finished() {
		t.Error("swinging must consume the cooldown")
	}

	ExecuteMelee(w, tick)
	hitboxes := w.Query(component.CMeleeHitbox)
	if len(hitboxes) != 1 {
		t.Fatalf("hitboxes = %d; want 1", len(hitboxes))
	}
	if v := velocity(w, p); !near(v.X, 400) {
		t.Errorf("lunge velocity = %+v; want 400 toward the enemy", v)
	}

	UpdateHitboxes(w, res)
	UpdateHitboxes(w, res)
	if h := health(w, enemy); !near(h, 70) {
		t.Errorf("enemy health = %v; want 70 after one hit", h)
	}
	if !w.Has(enemy, component.CStunned) {
		t.Error("hit enemy must be stunned")
	}
	if v := velocity(w, enemy); !near(v.X, 200) {
		t.Errorf("knockback = %+v; want 200 away from the player", v)
	}

	ExecuteMelee(w, time.Second)
	if w.Has(p, component.CMeleeAttackState) {
		t.Error("swing must end when its timer runs out")
	}
	if w.Alive(hitboxes[0]) {
		t.Error("hitbox must be removed with the swing")
	}
}

func TestMeleeNeedsMeleeSlot(t *testing.T) {
	w := ecs.NewWorld()
	res := bareResources()
	p := placePlayer(w, vec.Vec2{})
	placeEnemy(w, vec.Vec2{X: 40}, 100)
	newSword(w, 0)

	DetectMelee(w, res, tick)

	if w.Has(p, component.CMeleeAttackState) {
		t.Error("melee must not swing with the ranged slot selected")
	}
}

func TestMeleeIgnoresTargetsOutOfRange(t *testing.T) {
	w := ecs.NewWorld()
	res := bareResources()
	res.Slot = SlotMelee
	p := placePlayer(w, vec.Vec2{})
	placeEnemy(w, vec.Vec2{X: 400}, 100)
	sword := newSword(w, 0)

	DetectMelee(w, res, tick)

	if w.Has(p, component.CMeleeAttackState) {
		t.Error("no swing without a target in range")
	}
	if !w.Get(sword, component.CMeleeAttack).(component.MeleeAttack).Cooldown.Finished() {
		t.Error("cooldown must stay ready")
	}
}

func TestEnemyMeleeSwingsFromItself(t *testing.T) {
	w := ecs.NewWorld()
	res := bareResources()
	p := placePlayer(w, vec.Vec2{})
	brute := placeEnemy(w, vec.Vec2{X: 50}, 100)
	w.Add(brute, component.MeleeAttack{
		Cooldown:       ready(time.Second),
		DetectionRange: 80,
		Damage:         15,
		AttackDuration: 0.3,
		HitboxSize:     behavior.Size{W: 80, H: 80},
	})

	DetectMelee(w, res, tick)
	st, ok := w.Get(brute, component.CMeleeAttackState).(component.MeleeAttackState)
	if !ok {
		t.Fatal("brute must be swinging")
	}
	if st.Targets != behavior.Player || !near(st.Direction.X, -1) {
		t.Errorf("swing = %+v; want toward the player", st)
	}
	ExecuteMelee(w, tick)
	UpdateHitboxes(w, res)
	if h := health(w, p); !near(h, 85) {
		t.Errorf("player health = %v; want 85", h)
	}
}

func TestTickStuns(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	w.Add(id, component.Stunned{Timer: component.NewTimer(500*time.Millisecond, component.Once)})

	TickStuns(w, 300*time.Millisecond)
	if !w.Has(id, component.CStunned) {
		t.Fatal("stun must last its full duration")
	}
	TickStuns(w, 300*time.Millisecond)
	if w.Has(id, component.CStunned) {
		t.Error("stun must end when its timer runs out")
	}
}
