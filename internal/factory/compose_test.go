package factory

import (
	"testing"

	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/vec"
)

func fireRange(r float64) *float64 { return &r }

var testWeapon = &definition.Weapon{
	Name:   "Test Kit",
	Visual: definition.Visual{Size: behavior.Size{W: 20, H: 10}},
	Behaviors: behavior.List{
		behavior.FollowPlayer{},
		behavior.Orbiting{Radius: 80, Speed: 3},
		behavior.DamageOnContact{Damage: 20, DamageType: behavior.Continuous, Targets: behavior.Enemies},
		behavior.ProjectileSpawner{Cooldown: 1.5, Damage: 10, Speed: 300, Lifetime: 3, FireRange: fireRange(400)},
		behavior.MeleeAttack{Cooldown: 0.8, Damage: 30, StunDuration: 0.5, AttackDuration: 0.25},
	},
	Upgrades: behavior.UpgradeList{behavior.ScaleDamage{PerLevel: 0.2}},
}

func TestComposeWeaponComponents(t *testing.T) {
	w := ecs.NewWorld()
	ids := ComposeWeapon(w, testWeapon, "kit", 1, 1)
	if len(ids) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(ids))
	}
	id := ids[0]

	for _, ct := range []ecs.ComponentType{
		component.CTransform, component.CSprite, component.CWeaponID, component.CWeaponName,
		component.CWeaponLevel, component.CFollowPlayer, component.COrbiting, component.CDamageOnContact,
		component.CProjectileSpawner, component.CMeleeAttack, component.CDamageStats,
		component.CCooldownStats, component.CEffectStats, component.CUpgradeBehaviors,
	} {
		if !w.Has(id, ct) {
			t.Errorf("weapon missing component type %d", ct)
		}
	}

	if lvl := w.Get(id, component.CWeaponLevel).(component.WeaponLevel); lvl != 1 {
		t.Errorf("level = %d; want 1", lvl)
	}
	if tr := w.Get(id, component.CTransform).(component.Transform); tr.Z != 1 {
		t.Errorf("transform z = %v; want 1", tr.Z)
	}
	if o := w.Get(id, component.COrbiting).(component.Orbiting); o.Radius != 80 || o.Speed != 3 || o.Angle != 0 {
		t.Errorf("orbiting = %+v", o)
	}
	if ec := w.Get(id, component.CEffectStats).(component.EffectStats); ec.Base != 0.5 {
		t.Errorf("effect base = %v; want 0.5 (melee stun)", ec.Base)
	}
}

func TestComposedCooldownsStartCharged(t *testing.T) {
	w := ecs.NewWorld()
	id := ComposeWeapon(w, testWeapon, "kit", 1, 1)[0]

	ps := w.Get(id, component.CProjectileSpawner).(component.ProjectileSpawner)
	if !ps.Cooldown.Finished() {
		t.Error("projectile cooldown should start finished")
	}
	if ps.FireRange == nil || *ps.FireRange != 400 {
		t.Errorf("fire range = %v; want 400", ps.FireRange)
	}
	ma := w.Get(id, component.CMeleeAttack).(component.MeleeAttack)
	if !ma.Cooldown.Finished() {
		t.Error("melee cooldown should start finished")
	}
}

func TestComposeCountAndLevel(t *testing.T) {
	w := ecs.NewWorld()
	ids := ComposeWeapon(w, testWeapon, "kit", 3, 4)
	if len(ids) != 3 {
		t.Fatalf("expected 3 entities, got %d", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatal("ids should be returned in creation order")
		}
	}
	for _, id := range ids {
		if lvl := w.Get(id, component.CWeaponLevel).(component.WeaponLevel); lvl != 4 {
			t.Errorf("level = %d; want 4", lvl)
		}
		if wid, ok := w.Get(id, component.CWeaponID).(component.WeaponID); !ok || wid != "kit" {
			t.Errorf("weapon id = %q; want kit", wid)
		}
	}
}

func TestComposeWithoutUpgradesOmitsList(t *testing.T) {
	w := ecs.NewWorld()
	def := &definition.Weapon{Behaviors: behavior.List{behavior.FollowPlayer{}}}
	id := ComposeWeapon(w, def, "plain", 1, 1)[0]
	if w.Has(id, component.CUpgradeBehaviors) {
		t.Error("empty upgrade list should not be attached")
	}
	if w.Has(id, component.CDamageStats) {
		t.Error("no damage-bearing behavior means no damage stats")
	}
}

func TestComposeEnemy(t *testing.T) {
	w := ecs.NewWorld()
	def := &definition.Enemy{
		Health:  40,
		XPValue: 15,
		Behaviors: behavior.List{
			behavior.SeekTarget{Target: behavior.TargetPlayer, Speed: 90},
			behavior.ExplodeOnProximity{TriggerRange: 40, Damage: 25, Targets: behavior.Player},
		},
	}
	id := ComposeEnemy(w, def, "bomber", vec.Vec2{X: 700, Y: 0}, 1.5)

	d := w.Get(id, component.CDamageable).(component.Damageable)
	if d.Health != 60 || d.MaxHealth != 60 {
		t.Errorf("health = %v/%v; want 60/60", d.Health, d.MaxHealth)
	}
	if !w.Has(id, component.CTagEnemy) || !w.Has(id, component.CGravity) {
		t.Error("ground enemy needs enemy tag and gravity")
	}
	if !w.Has(id, component.CSeekTarget) || !w.Has(id, component.CExplodeOnProximity) {
		t.Error("enemy behaviors not attached")
	}
	if e := w.Get(id, component.CEnemy).(component.Enemy); e.ID != "bomber" || e.XPValue != 15 {
		t.Errorf("enemy = %+v", e)
	}

	flyer := ComposeEnemy(w, &definition.Enemy{Health: 1, Flying: true}, "bat", vec.Vec2{}, 1)
	if w.Has(flyer, component.CGravity) || !w.Has(flyer, component.CTagFlying) {
		t.Error("flying enemy should not have gravity")
	}
}

func TestNewProjectile(t *testing.T) {
	w := ecs.NewWorld()
	tmpl := component.ProjectileTemplate{Damage: 12, Speed: 300, Lifetime: 2}
	id := NewProjectile(w, vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 0, Y: 1}, tmpl, behavior.Player)

	tr := w.Get(id, component.CTransform).(component.Transform)
	if tr.Pos.X != 10 || tr.Pos.Y != 35 {
		t.Errorf("pos = %+v; want (10,35)", tr.Pos)
	}
	v := w.Get(id, component.CVelocity).(component.Velocity)
	if v.X != 0 || v.Y != 300 {
		t.Errorf("velocity = %+v; want (0,300)", v.Vec2)
	}
	doc := w.Get(id, component.CDamageOnContact).(component.DamageOnContact)
	if doc.DamageType != behavior.OneTime || doc.Targets != behavior.Player || doc.Damage != 12 {
		t.Errorf("contact = %+v", doc)
	}
	if !w.Has(id, component.CDespawnOnTimer) {
		t.Error("projectile should despawn on a timer")
	}
}

func TestNewPlatforms(t *testing.T) {
	w := ecs.NewWorld()
	if n := len(NewPlatforms(w)); n != 8 {
		t.Fatalf("expected 8 platforms, got %d", n)
	}
	if n := len(w.Query(component.CTagPlatform)); n != 8 {
		t.Errorf("expected 8 tagged platforms, got %d", n)
	}
}

func TestNewPlayer(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w)
	if !w.Has(id, component.CTagPlayer) || !w.Has(id, component.CEnergy) {
		t.Fatal("player missing tag or energy")
	}
	xp := w.Get(id, component.CExperience).(component.Experience)
	if xp.Level != 1 || xp.NextLevel != 100 {
		t.Errorf("experience = %+v", xp)
	}
}
