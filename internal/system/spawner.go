package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"survivors/internal/constant"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/vec"
)

// spawnNoiseScale maps elapsed seconds onto the noise curve that picks
// spawn heights.
const spawnNoiseScale = 0.37

// SpawnEnemies drops a random configured enemy just off screen on either
// side of the player every spawn interval. Heights follow a noise curve so
// consecutive spawns cluster instead of jumping around. Enemies whose
// definition is still loading are skipped.
func SpawnEnemies(w *ecs.World, res *Resources, dt time.Duration) {
	if res.Enemies == nil {
		return
	}
	p, ok := position(w, Player(w))
	if !ok {
		return
	}
	if !res.Waves.Spawn.Tick(dt).JustFinished() {
		return
	}
	enemyID, ok := res.Enemies.RandomID(res.Rng)
	if !ok {
		return
	}
	def, ok := res.Enemies.Resolve(enemyID)
	if !ok {
		return
	}

	side := 1.0
	if res.Rng.Intn(2) == 0 {
		side = -1
	}
	n := (res.Noise.Noise1D(res.Elapsed.Seconds()*spawnNoiseScale) + 1) / 2
	n = min(max(n, 0), 1)
	pos := vec.Vec2{
		X: p.Pos.X + side*constant.EnemySpawnDistance,
		Y: constant.EnemySpawnYMin + n*(constant.EnemySpawnYMax-constant.EnemySpawnYMin),
	}
	scale := 1 + float64(res.Waves.Wave)*constant.WaveHealthScaling
	id := factory.ComposeEnemy(w, def, enemyID, pos, scale)
	res.Metrics.EnemySpawned(enemyID)
	res.Log.WithFields(logrus.Fields{
		"enemy":  enemyID,
		"entity": id,
		"wave":   res.Waves.Wave,
	}).Debug("enemy spawned")
}

// AdvanceWaves bumps the wave counter every wave period and shortens the
// spawn interval, down to a floor. Waves only run while the player is alive.
func AdvanceWaves(w *ecs.World, res *Resources, dt time.Duration) {
	if Player(w) == ecs.NilEntity || res.PlayerDead {
		return
	}
	if !res.Waves.Next.Tick(dt).JustFinished() {
		return
	}
	res.Waves.Wave++
	step := time.Duration(float64(res.Waves.Wave) * constant.WaveSpawnRateScaling * float64(time.Second))
	res.Waves.Spawn.SetDuration(max(constant.EnemySpawnInterval-step, constant.MinSpawnInterval))
	res.Metrics.SetWave(res.Waves.Wave)
	res.Log.WithFields(logrus.Fields{
		"wave":     res.Waves.Wave,
		"interval": res.Waves.Spawn.Duration,
	}).Info("wave advanced")
}
