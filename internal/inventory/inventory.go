// Package inventory tracks which weapons the player owns.
package inventory

import "survivors/internal/ecs"

// Entry is one owned weapon: the instance upgrades are driven through and
// the level the weapon is at.
type Entry struct {
	Primary ecs.EntityID
	Level   uint32
}

// Inventory maps weapon IDs to entries. Single writer per tick.
type Inventory struct {
	entries map[string]Entry
	order   []string
}

// New returns an empty inventory.
func New() *Inventory {
	return &Inventory{entries: make(map[string]Entry)}
}

// Get returns the entry for weaponID.
func (inv *Inventory) Get(weaponID string) (Entry, bool) {
	e, ok := inv.entries[weaponID]
	return e, ok
}

// Set records or replaces the entry for weaponID.
func (inv *Inventory) Set(weaponID string, e Entry) {
	if _, ok := inv.entries[weaponID]; !ok {
		inv.order = append(inv.order, weaponID)
	}
	inv.entries[weaponID] = e
}

// IsPrimary reports whether id is the recorded primary for weaponID.
func (inv *Inventory) IsPrimary(weaponID string, id ecs.EntityID) bool {
	e, ok := inv.entries[weaponID]
	return ok && e.Primary == id
}

// IDs returns owned weapon IDs in acquisition order.
func (inv *Inventory) IDs() []string {
	return inv.order
}

// Len returns the number of owned weapons.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}
