package upgrade

import (
	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/inventory"
)

// Grant is the outcome of acquiring a weapon.
type Grant struct {
	WeaponID string
	Primary  ecs.EntityID
	Level    uint32
	// New is true when the weapon was composed rather than leveled.
	New bool
}

// LevelUp raises an owned weapon's level by one on its primary instance and
// in the inventory. The upgrade pass picks the change up.
func LevelUp(w *ecs.World, inv *inventory.Inventory, weaponID string) (uint32, bool) {
	e, ok := inv.Get(weaponID)
	if !ok {
		return 0, false
	}
	lvl, ok := w.Get(e.Primary, component.CWeaponLevel).(component.WeaponLevel)
	if !ok {
		return 0, false
	}
	lvl++
	w.Add(e.Primary, lvl)
	inv.Set(weaponID, inventory.Entry{Primary: e.Primary, Level: uint32(lvl)})
	return uint32(lvl), true
}

// Acquire gives the player weaponID: an owned weapon is leveled in place,
// otherwise one instance is composed at level 1. It reports false while the
// definition has not loaded.
func Acquire(w *ecs.World, inv *inventory.Inventory, weapons *definition.WeaponRegistry, weaponID string) (Grant, bool) {
	if e, ok := inv.Get(weaponID); ok {
		lvl, ok := LevelUp(w, inv, weaponID)
		if !ok {
			return Grant{}, false
		}
		return Grant{WeaponID: weaponID, Primary: e.Primary, Level: lvl}, true
	}
	if weapons == nil {
		return Grant{}, false
	}
	def, ok := weapons.Resolve(weaponID)
	if !ok {
		return Grant{}, false
	}
	ids := factory.ComposeWeapon(w, def, weaponID, 1, 1)
	inv.Set(weaponID, inventory.Entry{Primary: ids[0], Level: 1})
	return Grant{WeaponID: weaponID, Primary: ids[0], Level: 1, New: true}, true
}

// GrantInitial composes a starting weapon at its configured level. Weapons
// that multiply through SpawnAdditionalEntity start with one instance per
// level. It reports false while the definition has not loaded.
func GrantInitial(w *ecs.World, inv *inventory.Inventory, weapons *definition.WeaponRegistry, iw definition.InitialWeapon) (Grant, bool) {
	if e, ok := inv.Get(iw.WeaponID); ok {
		return Grant{WeaponID: iw.WeaponID, Primary: e.Primary, Level: e.Level}, true
	}
	if weapons == nil {
		return Grant{}, false
	}
	def, ok := weapons.Resolve(iw.WeaponID)
	if !ok {
		return Grant{}, false
	}
	level := max(iw.Level, 1)
	count := 1
	if def.Upgrades.Has(behavior.SpawnAdditionalEntity{}) {
		count = int(level)
	}
	ids := factory.ComposeWeapon(w, def, iw.WeaponID, count, level)
	inv.Set(iw.WeaponID, inventory.Entry{Primary: ids[0], Level: level})
	return Grant{WeaponID: iw.WeaponID, Primary: ids[0], Level: level, New: true}, true
}
