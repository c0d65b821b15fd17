// Package sim runs the game's systems in a fixed order, one tick at a time.
// It has no notion of rendering or input devices; the terminal front end and
// the headless runner both drive it.
package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"

	"survivors/internal/assetstore"
	"survivors/internal/constant"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/powerup"
	"survivors/internal/system"
	"survivors/internal/telemetry"
	"survivors/internal/upgrade"
)

// ErrNoChoice is returned by Choose when no level-up is pending.
var ErrNoChoice = errors.New("no level-up pending")

// Options configures a Sim.
type Options struct {
	Assets  fs.FS
	Seed    int64
	Log     *logrus.Entry
	Metrics *telemetry.Metrics
}

// Sim owns the world and the shared resources.
type Sim struct {
	World *ecs.World
	Res   *system.Resources

	offer []definition.Powerup
}

// New starts loading the game configuration from opts.Assets.
func New(opts Options) *Sim {
	log := opts.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	store := assetstore.New(opts.Assets, log.WithField("component", "assetstore"))
	definition.RegisterLoaders(store)

	w := ecs.NewWorld()
	upgrade.Watch(w)
	return &Sim{
		World: w,
		Res:   system.NewResources(store, opts.Seed, log.WithField("component", "system"), opts.Metrics),
	}
}

// Step advances the game by dt. The only error is a configuration that
// cannot be used, after which the game must stop.
func (s *Sim) Step(dt time.Duration) error {
	w, res := s.World, s.Res
	if err := system.InitRegistries(res); err != nil {
		return fmt.Errorf("game configuration: %w", err)
	}
	system.SpawnPlayer(w, res)
	system.GrantInitialWeapons(w, res)
	if res.PlayerDead {
		return nil
	}
	res.Elapsed += dt

	system.SelectSlot(res)
	system.MovePlayer(w, res, dt)
	system.RegenEnergy(w, dt)

	system.ApplyUpgrades(w, res)
	system.SyncWeaponStats(w)

	system.FollowPlayer(w)
	system.RedistributeOrbits(w, res)
	system.Orbit(w, dt)
	system.SeekTargets(w)
	system.ZigZag(w, dt)
	system.MaintainDistance(w)
	system.FireProjectiles(w, res, dt)
	system.Explode(w, res)

	system.DetectMelee(w, res, dt)
	system.ExecuteMelee(w, dt)
	system.UpdateHitboxes(w, res)
	system.TickStuns(w, dt)

	system.ApplyGravity(w, dt)
	system.ApplyVelocity(w, dt)
	system.LandOnPlatforms(w, dt)
	system.SeparateColliders(w)

	system.ContactDamage(w, res, dt)
	system.Deaths(w, res)
	system.DespawnExpired(w, dt)

	system.AttractOrbs(w, dt)
	system.CollectOrbs(w, res)

	system.AdvanceWaves(w, res, dt)
	system.SpawnEnemies(w, res, dt)

	res.Metrics.SetEntities(w.Count())
	return nil
}

// Ready reports whether the player has spawned.
func (s *Sim) Ready() bool {
	return system.Player(s.World) != ecs.NilEntity
}

// Dead reports whether the player has died.
func (s *Sim) Dead() bool {
	return s.Res.PlayerDead
}

// Offer returns the powerup choices for the next pending level-up, rolling
// them on first call. It returns nil when nothing is pending.
func (s *Sim) Offer() []definition.Powerup {
	if s.Res.PendingLevelUps == 0 {
		return nil
	}
	if s.offer == nil {
		cfg, ok := s.Res.GameConfig()
		if !ok {
			return nil
		}
		s.offer = powerup.Roll(s.Res.Rng, cfg.PowerupPool, constant.PowerupOptionsCount)
	}
	return s.offer
}

// Choose applies option i of the current offer and consumes one pending
// level-up.
func (s *Sim) Choose(i int) (powerup.Result, error) {
	offer := s.Offer()
	if offer == nil {
		return powerup.Result{}, ErrNoChoice
	}
	if i < 0 || i >= len(offer) {
		return powerup.Result{}, fmt.Errorf("choice %d out of range [0, %d)", i, len(offer))
	}
	r, err := powerup.Apply(powerup.Target{
		World:     s.World,
		Player:    system.Player(s.World),
		Inventory: s.Res.Inventory,
		Weapons:   s.Res.Weapons,
	}, offer[i])
	if err != nil {
		return r, err
	}
	s.offer = nil
	s.Res.PendingLevelUps--
	s.logChoice(r)
	return r, nil
}

func (s *Sim) logChoice(r powerup.Result) {
	if r.Stat != nil {
		s.Res.Log.WithFields(logrus.Fields{
			"stat":  r.Stat.Stat.String(),
			"value": r.Stat.Value,
		}).Info("stat boost applied")
		return
	}
	s.Res.Metrics.WeaponUpgraded(r.Grant.WeaponID)
	s.Res.Log.WithFields(logrus.Fields{
		"weapon": r.Grant.WeaponID,
		"level":  r.Grant.Level,
		"new":    r.Grant.New,
	}).Info("weapon powerup applied")
}

// ReportConfigError logs err at error level, one entry per problem when it
// is a validation failure.
func ReportConfigError(log *logrus.Entry, err error) {
	var verr *definition.ValidationError
	if !errors.As(err, &verr) {
		log.WithError(err).Error("game configuration unusable")
		return
	}
	for _, p := range verr.Problems {
		log.WithField("problem", p).Error("invalid game configuration")
	}
}

// Wait blocks until every asset requested so far has settled.
func (s *Sim) Wait() {
	s.Res.Store.Wait()
}

// Warm steps until the configuration and every definition it names have
// loaded and the player holds its starting weapons.
func (s *Sim) Warm() error {
	for range 3 {
		s.Wait()
		if err := s.Step(0); err != nil {
			return err
		}
	}
	return nil
}
