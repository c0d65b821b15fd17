// Package system holds the per-tick systems. Each is a free function over the
// world plus whatever shared state it needs from Resources.
package system

import (
	"math/rand"
	"time"

	perlin "github.com/aquilax/go-perlin"
	"github.com/sirupsen/logrus"

	"survivors/internal/assetstore"
	"survivors/internal/component"
	"survivors/internal/constant"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/inventory"
	"survivors/internal/telemetry"
)

// Slot is the weapon slot the player has selected.
type Slot uint8

const (
	SlotRanged Slot = iota
	SlotMelee
)

func (s Slot) String() string {
	if s == SlotMelee {
		return "melee"
	}
	return "ranged"
}

// Input is the player's intent for one tick.
type Input struct {
	Left, Right, Jump bool
	SelectMelee       bool
	SelectRanged      bool
	ToggleSlot        bool
}

// Waves paces enemy spawning.
type Waves struct {
	Wave  int
	Spawn component.Timer
	Next  component.Timer
}

// Resources is the state shared between systems across ticks.
type Resources struct {
	Store   *assetstore.Store
	Config  assetstore.Handle
	Weapons *definition.WeaponRegistry
	Enemies *definition.EnemyRegistry

	Inventory *inventory.Inventory
	Input     Input
	Slot      Slot
	Waves     Waves
	Noise     *perlin.Perlin
	Rng       *rand.Rand
	Log       *logrus.Entry
	Metrics   *telemetry.Metrics

	// Elapsed is total simulated time.
	Elapsed time.Duration
	// OrbitCount is the orbiting instance count at the last redistribution.
	OrbitCount      int
	PendingLevelUps int
	Kills           int
	PlayerDead      bool

	validated      bool
	loadReported   bool
	initialGranted bool
}

// NewResources requests the game configuration from store and seeds the
// random sources.
func NewResources(store *assetstore.Store, seed int64, log *logrus.Entry, m *telemetry.Metrics) *Resources {
	return &Resources{
		Store:     store,
		Config:    store.Load(definition.ConfigPath),
		Inventory: inventory.New(),
		Waves: Waves{
			Spawn: component.NewTimer(constant.EnemySpawnInterval, component.Repeating),
			Next:  component.NewTimer(constant.WaveDuration, component.Repeating),
		},
		Noise:   perlin.NewPerlin(2, 2, 3, seed),
		Rng:     rand.New(rand.NewSource(seed)),
		Log:     log,
		Metrics: m,
	}
}

// GameConfig returns the configuration once it has loaded.
func (r *Resources) GameConfig() (*definition.GameConfig, bool) {
	return assetstore.Get[*definition.GameConfig](r.Store, r.Config)
}

// Player returns the player entity, or ecs.NilEntity before it spawns.
func Player(w *ecs.World) ecs.EntityID {
	return w.First(component.CTagPlayer, component.CTransform)
}

func position(w *ecs.World, id ecs.EntityID) (component.Transform, bool) {
	t, ok := w.Get(id, component.CTransform).(component.Transform)
	return t, ok
}

func stunned(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, component.CStunned)
}

func enemyOwned(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, component.CTagEnemy)
}
