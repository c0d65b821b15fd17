package system

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"survivors/internal/assetstore"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/upgrade"
)

// InitRegistries builds the weapon and enemy registries once the
// configuration has loaded, validating it first. It is a no-op on later
// ticks and before the configuration is available. A configuration that
// fails to load or validate is returned as an error; the game must not go on.
func InitRegistries(res *Resources) error {
	if res.Weapons != nil {
		reportLoads(res)
		return nil
	}
	switch res.Store.State(res.Config) {
	case assetstore.Failed:
		return fmt.Errorf("load %s: %w", definition.ConfigPath, res.Store.Err(res.Config))
	case assetstore.Loaded:
	default:
		return nil
	}
	cfg, ok := res.GameConfig()
	if !ok {
		return fmt.Errorf("load %s: unexpected asset type", definition.ConfigPath)
	}
	if !res.validated {
		if err := definition.Validate(cfg); err != nil {
			return err
		}
		res.validated = true
	}
	res.Weapons = definition.NewWeaponRegistry(res.Store, cfg)
	res.Enemies = definition.NewEnemyRegistry(res.Store, cfg)
	res.Log.WithFields(logrus.Fields{
		"weapons":  len(res.Weapons.IDs()),
		"enemies":  len(res.Enemies.IDs()),
		"powerups": len(cfg.PowerupPool),
	}).Info("game configuration loaded")
	if n := len(res.Weapons.Pending()) + len(res.Enemies.Pending()); n > 0 {
		res.Log.WithField("pending", n).Debug("definitions still loading")
	}
	reportLoads(res)
	return nil
}

// reportLoads logs definition files that failed once every load has settled.
func reportLoads(res *Resources) {
	if res.loadReported {
		return
	}
	pending := len(res.Weapons.Pending()) + len(res.Enemies.Pending())
	if pending > 0 {
		return
	}
	res.loadReported = true
	for _, id := range res.Weapons.Failed() {
		res.Log.WithField("weapon", id).Error("weapon definition failed to load")
	}
	for _, id := range res.Enemies.Failed() {
		res.Log.WithField("enemy", id).Error("enemy definition failed to load")
	}
}

// SpawnPlayer creates the player and the level geometry once the
// configuration is ready.
func SpawnPlayer(w *ecs.World, res *Resources) {
	if res.Weapons == nil || Player(w) != ecs.NilEntity || res.PlayerDead {
		return
	}
	id := factory.NewPlayer(w)
	factory.NewPlatforms(w)
	res.Log.WithField("entity", id).Debug("player spawned")
}

// GrantInitialWeapons gives the player the configured starting weapons. A
// weapon whose definition is still loading is retried on the next tick.
func GrantInitialWeapons(w *ecs.World, res *Resources) {
	if res.initialGranted || res.Weapons == nil || Player(w) == ecs.NilEntity {
		return
	}
	cfg, ok := res.GameConfig()
	if !ok {
		return
	}
	done := true
	for _, iw := range cfg.InitialWeapons {
		if _, owned := res.Inventory.Get(iw.WeaponID); owned {
			continue
		}
		if !res.Weapons.Known(iw.WeaponID) {
			continue
		}
		g, ok := upgrade.GrantInitial(w, res.Inventory, res.Weapons, iw)
		if !ok {
			if !slices.Contains(res.Weapons.Failed(), iw.WeaponID) {
				done = false
			}
			continue
		}
		res.Metrics.WeaponUpgraded(g.WeaponID)
		res.Log.WithFields(logrus.Fields{
			"weapon": g.WeaponID,
			"level":  g.Level,
		}).Info("initial weapon granted")
	}
	res.initialGranted = done
}
