// Package powerup rolls level-up choices and applies the one picked.
package powerup

import (
	"errors"
	"fmt"
	"math/rand"

	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/inventory"
	"survivors/internal/upgrade"
)

// ErrNotReady is returned when a weapon powerup's definition has not loaded.
var ErrNotReady = errors.New("weapon definition not loaded")

// Roll picks up to n distinct entries of pool in random order.
func Roll(rng *rand.Rand, pool []definition.Powerup, n int) []definition.Powerup {
	idx := rng.Perm(len(pool))
	out := make([]definition.Powerup, 0, min(n, len(pool)))
	for _, i := range idx[:min(n, len(pool))] {
		out = append(out, pool[i])
	}
	return out
}

// Target is what a powerup is applied to.
type Target struct {
	World     *ecs.World
	Player    ecs.EntityID
	Inventory *inventory.Inventory
	Weapons   *definition.WeaponRegistry
}

// Result describes an applied powerup.
type Result struct {
	Grant upgrade.Grant
	Stat  *definition.StatBoost
}

// Apply grants the weapon or raises the stat p names. Weapons the player
// already owns go up one level.
func Apply(t Target, p definition.Powerup) (Result, error) {
	if p.IsWeapon() {
		g, ok := upgrade.Acquire(t.World, t.Inventory, t.Weapons, p.WeaponID)
		if !ok {
			return Result{}, fmt.Errorf("weapon %q: %w", p.WeaponID, ErrNotReady)
		}
		return Result{Grant: g}, nil
	}
	if err := boost(t.World, t.Player, *p.Boost); err != nil {
		return Result{}, err
	}
	return Result{Stat: p.Boost}, nil
}

func boost(w *ecs.World, player ecs.EntityID, b definition.StatBoost) error {
	switch b.Stat {
	case definition.StatSpeed, definition.StatJumpForce:
		ps, ok := w.Get(player, component.CPlayerStats).(component.PlayerStats)
		if !ok {
			return fmt.Errorf("boost %s: player has no stats", b.Stat)
		}
		if b.Stat == definition.StatSpeed {
			ps.Speed += b.Value
		} else {
			ps.JumpForce += b.Value
		}
		w.Add(player, ps)
	case definition.StatMaxHealth:
		d, ok := w.Get(player, component.CDamageable).(component.Damageable)
		if !ok {
			return fmt.Errorf("boost %s: player has no health", b.Stat)
		}
		d.MaxHealth += b.Value
		d.Health = d.MaxHealth
		w.Add(player, d)
	case definition.StatEnergyRegen:
		e, ok := w.Get(player, component.CEnergy).(component.Energy)
		if !ok {
			return fmt.Errorf("boost %s: player has no energy", b.Stat)
		}
		e.Regen += b.Value
		w.Add(player, e)
	default:
		return fmt.Errorf("boost: unknown stat %s", b.Stat)
	}
	return nil
}

// Label returns the menu text for p: the weapon's name with the level it
// would reach, or the boost's name.
func Label(p definition.Powerup, inv *inventory.Inventory, weapons *definition.WeaponRegistry) (title, detail string) {
	if !p.IsWeapon() {
		return p.Boost.Name, p.Boost.Description
	}
	title = p.WeaponID
	if weapons != nil {
		if def, ok := weapons.Resolve(p.WeaponID); ok {
			title, detail = def.Name, def.Description
		}
	}
	if e, ok := inv.Get(p.WeaponID); ok {
		return fmt.Sprintf("%s Lv %d", title, e.Level+1), detail
	}
	return title + " (new)", detail
}
