package powerup

import (
	"io"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"survivors/internal/assetstore"
	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/inventory"
	"survivors/internal/upgrade"
)

func weaponRegistry(t *testing.T) *definition.WeaponRegistry {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := assetstore.New(fstest.MapFS{
		definition.WeaponPath("gun"): {Data: []byte(`
name: Gun
description: Shoots things.
behaviors:
  - FollowPlayer
upgrade_behaviors:
  - ScaleDamage: {per_level: 0.2}
`)},
	}, logrus.NewEntry(l))
	definition.RegisterLoaders(s)
	r := definition.NewWeaponRegistry(s, &definition.GameConfig{WeaponIDs: []string{"gun", "missing"}})
	s.Wait()
	return r
}

func target(t *testing.T) Target {
	w := ecs.NewWorld()
	upgrade.Watch(w)
	return Target{
		World:     w,
		Player:    factory.NewPlayer(w),
		Inventory: inventory.New(),
		Weapons:   weaponRegistry(t),
	}
}

func TestRollDistinct(t *testing.T) {
	pool := []definition.Powerup{
		{WeaponID: "a"}, {WeaponID: "b"}, {WeaponID: "c"}, {WeaponID: "d"}, {WeaponID: "e"},
	}
	rng := rand.New(rand.NewSource(3))
	for range 20 {
		got := Roll(rng, pool, 3)
		require.Len(t, got, 3)
		seen := map[string]bool{}
		for _, p := range got {
			assert.False(t, seen[p.WeaponID], "duplicate option %s", p.WeaponID)
			seen[p.WeaponID] = true
		}
	}
	assert.Len(t, Roll(rng, pool[:2], 3), 2)
	assert.Empty(t, Roll(rng, nil, 3))
}

func TestApplyWeaponGrantsThenLevels(t *testing.T) {
	tg := target(t)
	p := definition.Powerup{WeaponID: "gun"}

	res, err := Apply(tg, p)
	require.NoError(t, err)
	assert.True(t, res.Grant.New)
	assert.EqualValues(t, 1, res.Grant.Level)

	res, err = Apply(tg, p)
	require.NoError(t, err)
	assert.False(t, res.Grant.New)
	assert.EqualValues(t, 2, res.Grant.Level)
	lvl := tg.World.Get(res.Grant.Primary, component.CWeaponLevel).(component.WeaponLevel)
	assert.EqualValues(t, 2, lvl)
}

func TestApplyWeaponNotReady(t *testing.T) {
	tg := target(t)
	_, err := Apply(tg, definition.Powerup{WeaponID: "missing"})
	assert.ErrorIs(t, err, ErrNotReady)
	assert.Zero(t, tg.Inventory.Len())
}

func TestApplyStatBoosts(t *testing.T) {
	tg := target(t)
	w, p := tg.World, tg.Player
	w.Add(p, component.Damageable{Health: 40, MaxHealth: 100})

	for _, b := range []definition.StatBoost{
		{Stat: definition.StatSpeed, Value: 20},
		{Stat: definition.StatJumpForce, Value: 50},
		{Stat: definition.StatMaxHealth, Value: 25},
		{Stat: definition.StatEnergyRegen, Value: 5},
	} {
		_, err := Apply(tg, definition.Powerup{Boost: &b})
		require.NoError(t, err, b.Stat.String())
	}

	ps := w.Get(p, component.CPlayerStats).(component.PlayerStats)
	assert.InDelta(t, 220, ps.Speed, 1e-9)
	assert.InDelta(t, 450, ps.JumpForce, 1e-9)
	d := w.Get(p, component.CDamageable).(component.Damageable)
	assert.InDelta(t, 125, d.MaxHealth, 1e-9)
	assert.InDelta(t, 125, d.Health, 1e-9, "max health boosts heal fully")
	e := w.Get(p, component.CEnergy).(component.Energy)
	assert.InDelta(t, 15, e.Regen, 1e-9)
}

func TestLabel(t *testing.T) {
	tg := target(t)
	gun := definition.Powerup{WeaponID: "gun"}

	title, detail := Label(gun, tg.Inventory, tg.Weapons)
	assert.Equal(t, "Gun (new)", title)
	assert.Equal(t, "Shoots things.", detail)

	_, err := Apply(tg, gun)
	require.NoError(t, err)
	title, _ = Label(gun, tg.Inventory, tg.Weapons)
	assert.Equal(t, "Gun Lv 2", title)

	title, _ = Label(definition.Powerup{Boost: &definition.StatBoost{Name: "Focus"}}, tg.Inventory, tg.Weapons)
	assert.Equal(t, "Focus", title)
}
