package system

import (
	"github.com/sirupsen/logrus"

	"survivors/internal/component"
	"survivors/internal/ecs"
	"survivors/internal/upgrade"
)

// ApplyUpgrades recomputes the stats of weapons whose level changed and
// spawns the extra instances they earned.
func ApplyUpgrades(w *ecs.World, res *Resources) {
	rep := upgrade.Apply(w, res.Inventory, res.Weapons)
	if len(rep.Spawned) == 0 {
		return
	}
	wid, _ := w.Get(rep.Spawned[0], component.CWeaponID).(component.WeaponID)
	res.Log.WithFields(logrus.Fields{
		"weapon":  string(wid),
		"spawned": len(rep.Spawned),
	}).Debug("weapon instances spawned")
}

// SyncWeaponStats keeps every instance of a weapon at the damage of its
// highest-level instance.
func SyncWeaponStats(w *ecs.World) {
	upgrade.SyncStats(w)
}
