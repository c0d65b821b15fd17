package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.ProjectileFired(FactionOf(false))
	m.ProjectileFired(FactionOf(false))
	m.EnemyKilled("goblin")
	m.DamageDealt(FactionEnemy, 12.5)
	m.DamageDealt(FactionEnemy, 0)
	m.SetWave(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.projectilesFired.WithLabelValues("player")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.enemiesKilled.WithLabelValues("goblin")))
	assert.Equal(t, 12.5, testutil.ToFloat64(m.damageDealt.WithLabelValues("enemy")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.wave))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ProjectileFired(FactionPlayer)
		m.EnemySpawned("bat")
		m.SetEntities(4)
	})
}

func TestGather(t *testing.T) {
	m := New()
	m.WeaponUpgraded("blade")
	m.SetEntities(7)
	samples, err := m.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, s := range samples {
		got[s.Name] = s.Value
	}
	assert.Equal(t, 1.0, got["survivors_weapon_upgrades_total{weapon=blade}"])
	assert.Equal(t, 7.0, got["survivors_entities"])
}
