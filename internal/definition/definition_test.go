package definition

import (
	"io"
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"survivors/assets"
	"survivors/internal/assetstore"
	"survivors/internal/behavior"
)

func newStore(fsys fstest.MapFS) *assetstore.Store {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := assetstore.New(fsys, logrus.NewEntry(l))
	RegisterLoaders(s)
	return s
}

func TestEmbeddedDataLoadsAndValidates(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := assetstore.New(assets.Data(), logrus.NewEntry(l))
	RegisterLoaders(s)

	h := s.Load(ConfigPath)
	s.Wait()
	cfg, ok := assetstore.Get[*GameConfig](s, h)
	require.True(t, ok, "config: %v", s.Err(h))
	require.NoError(t, Validate(cfg))

	weapons := NewWeaponRegistry(s, cfg)
	enemies := NewEnemyRegistry(s, cfg)
	s.Wait()
	assert.Empty(t, weapons.Failed())
	assert.Empty(t, enemies.Failed())
	for _, id := range cfg.WeaponIDs {
		w, ok := weapons.Resolve(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, w.Behaviors, id)
	}
	for _, id := range cfg.EnemyIDs {
		e, ok := enemies.Resolve(id)
		require.True(t, ok, id)
		assert.Positive(t, e.Health, id)
	}

	shooter, _ := weapons.Resolve("auto_shooter")
	assert.Contains(t, shooter.Upgrades, behavior.Upgrade(behavior.ScaleDamage{PerLevel: 0.2}))
}

func TestRegistryResolvesOnlyAfterLoad(t *testing.T) {
	s := newStore(fstest.MapFS{
		"weapons/a.weapon.yaml": {Data: []byte("name: A\nbehaviors:\n  - FollowPlayer\n")},
	})
	cfg := &GameConfig{WeaponIDs: []string{"a", "a", "missing"}}
	r := NewWeaponRegistry(s, cfg)
	assert.Equal(t, []string{"a", "missing"}, r.IDs())

	_, ok := r.Resolve("unknown")
	assert.False(t, ok)

	s.Wait()
	w, ok := r.Resolve("a")
	require.True(t, ok)
	assert.Equal(t, "A", w.Name)
	assert.Empty(t, r.Pending())
	assert.Equal(t, []string{"missing"}, r.Failed())
	assert.True(t, r.Known("missing"))
}

func TestRandomID(t *testing.T) {
	s := newStore(fstest.MapFS{})
	rng := rand.New(rand.NewSource(1))

	empty := NewEnemyRegistry(s, &GameConfig{})
	_, ok := empty.RandomID(rng)
	assert.False(t, ok)

	r := NewEnemyRegistry(s, &GameConfig{EnemyIDs: []string{"a", "b", "c"}})
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		id, ok := r.RandomID(rng)
		require.True(t, ok)
		seen[id]++
	}
	assert.Len(t, seen, 3)
	s.Wait()
}

func TestDecodePowerups(t *testing.T) {
	src := `
powerup_pool:
  - weapon: blade
  - stat_boost: {name: Boots, description: fast, stat: Speed, value: 20}
`
	var cfg GameConfig
	require.NoError(t, yaml.Unmarshal([]byte(src), &cfg))
	require.Len(t, cfg.PowerupPool, 2)
	assert.True(t, cfg.PowerupPool[0].IsWeapon())
	assert.Equal(t, "blade", cfg.PowerupPool[0].WeaponID)
	require.NotNil(t, cfg.PowerupPool[1].Boost)
	assert.Equal(t, StatSpeed, cfg.PowerupPool[1].Boost.Stat)

	for _, bad := range []string{
		"powerup_pool:\n  - {}\n",
		"powerup_pool:\n  - {weapon: a, stat_boost: {stat: Speed}}\n",
		"powerup_pool:\n  - stat_boost: {stat: Luck}\n",
	} {
		var c GameConfig
		assert.Error(t, yaml.Unmarshal([]byte(bad), &c), bad)
	}
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("auto_shooter"))
	for _, id := range []string{"", "two words", "tab\there", "../etc", "a/b", `a\b`} {
		assert.Error(t, ValidateID(id), id)
	}
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	cfg := &GameConfig{
		WeaponIDs: []string{"blade", "blade", " ", "gun"},
		EnemyIDs:  []string{"goblin", "../x"},
		PowerupPool: []Powerup{
			{WeaponID: "blade"},
			{WeaponID: "laser"},
			{Boost: &StatBoost{Stat: StatSpeed}},
		},
		InitialWeapons: []InitialWeapon{
			{WeaponID: "gun", Level: 1},
			{WeaponID: "bow", Level: 1},
			{WeaponID: "blade", Level: 0},
		},
	}
	err := Validate(cfg)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 6)
	assert.Contains(t, err.Error(), `duplicate id "blade"`)
	assert.Contains(t, err.Error(), `unknown weapon "laser"`)
	assert.Contains(t, err.Error(), `unknown weapon "bow"`)
}

func TestValidateAcceptsCleanConfig(t *testing.T) {
	cfg := &GameConfig{
		WeaponIDs:      []string{"blade"},
		EnemyIDs:       []string{"goblin"},
		PowerupPool:    []Powerup{{WeaponID: "blade"}},
		InitialWeapons: []InitialWeapon{{WeaponID: "blade", Level: 2}},
	}
	assert.NoError(t, Validate(cfg))
}
