// Package telemetry counts gameplay events with prometheus collectors held in
// a private registry.
package telemetry

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "survivors"

// Metrics is the set of collectors systems report into. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	projectilesFired *prometheus.CounterVec
	meleeSwings      *prometheus.CounterVec
	enemiesSpawned   *prometheus.CounterVec
	enemiesKilled    *prometheus.CounterVec
	weaponUpgrades   *prometheus.CounterVec
	damageDealt      *prometheus.CounterVec
	entities         prometheus.Gauge
	wave             prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		projectilesFired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_fired_total",
			Help:      "Projectiles spawned, by owning faction.",
		}, []string{"faction"}),
		meleeSwings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "melee_swings_total",
			Help:      "Melee attacks started, by owning faction.",
		}, []string{"faction"}),
		enemiesSpawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_spawned_total",
			Help:      "Enemies spawned, by definition ID.",
		}, []string{"enemy"}),
		enemiesKilled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies killed, by definition ID.",
		}, []string{"enemy"}),
		weaponUpgrades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weapon_upgrades_total",
			Help:      "Weapon acquisitions and level-ups, by weapon ID.",
		}, []string{"weapon"}),
		damageDealt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_dealt_total",
			Help:      "Health removed, by victim faction.",
		}, []string{"faction"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Living entities at the end of the last tick.",
		}),
		wave: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wave",
			Help:      "Current enemy wave.",
		}),
	}
	m.Registry.MustRegister(
		m.projectilesFired, m.meleeSwings, m.enemiesSpawned, m.enemiesKilled,
		m.weaponUpgrades, m.damageDealt, m.entities, m.wave,
	)
	return m
}

// Faction labels.
const (
	FactionPlayer = "player"
	FactionEnemy  = "enemy"
)

// FactionOf returns the label for an enemy-owned flag.
func FactionOf(enemy bool) string {
	if enemy {
		return FactionEnemy
	}
	return FactionPlayer
}

func (m *Metrics) ProjectileFired(faction string) {
	if m != nil {
		m.projectilesFired.WithLabelValues(faction).Inc()
	}
}

func (m *Metrics) MeleeSwing(faction string) {
	if m != nil {
		m.meleeSwings.WithLabelValues(faction).Inc()
	}
}

func (m *Metrics) EnemySpawned(id string) {
	if m != nil {
		m.enemiesSpawned.WithLabelValues(id).Inc()
	}
}

func (m *Metrics) EnemyKilled(id string) {
	if m != nil {
		m.enemiesKilled.WithLabelValues(id).Inc()
	}
}

func (m *Metrics) WeaponUpgraded(id string) {
	if m != nil {
		m.weaponUpgrades.WithLabelValues(id).Inc()
	}
}

func (m *Metrics) DamageDealt(faction string, amount float64) {
	if m != nil && amount > 0 {
		m.damageDealt.WithLabelValues(faction).Add(amount)
	}
}

func (m *Metrics) SetEntities(n int) {
	if m != nil {
		m.entities.Set(float64(n))
	}
}

func (m *Metrics) SetWave(n int) {
	if m != nil {
		m.wave.Set(float64(n))
	}
}

// Sample is one gathered series.
type Sample struct {
	Name  string
	Value float64
}

// Gather returns every series in the registry as name{labels} samples,
// sorted by name.
func (m *Metrics) Gather() ([]Sample, error) {
	families, err := m.Registry.Gather()
	if err != nil {
		return nil, err
	}
	var out []Sample
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			v := metric.GetCounter().GetValue()
			if g := metric.GetGauge(); g != nil {
				v = g.GetValue()
			}
			out = append(out, Sample{Name: name, Value: v})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
