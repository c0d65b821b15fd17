package ecs

import (
	"cmp"
	"slices"
)

// World is the central entity registry and component store.
type World struct {
	nextID     EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
	changes    map[ComponentType]*changeLog
}

type changeLog struct {
	order []EntityID
	prev  map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
		changes:    make(map[ComponentType]*changeLog),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Count returns the number of living entities.
func (w *World) Count() int {
	return len(w.alive)
}

// Track starts recording writes to components of type t. See TakeChanges.
func (w *World) Track(t ComponentType) {
	if w.changes[t] == nil {
		w.changes[t] = &changeLog{prev: make(map[EntityID]Component)}
	}
}

// TakeChanges returns the entities whose component of type t was written
// since the previous call, in creation order, and clears the log. Entities
// that died or lost the component in the meantime are left out.
func (w *World) TakeChanges(t ComponentType) []Change {
	log := w.changes[t]
	if log == nil || len(log.order) == 0 {
		return nil
	}
	out := make([]Change, 0, len(log.order))
	for _, id := range log.order {
		if !w.alive[id] || !w.Has(id, t) {
			continue
		}
		out = append(out, Change{ID: id, Prev: log.prev[id]})
	}
	slices.SortFunc(out, func(a, b Change) int { return cmp.Compare(a.ID, b.ID) })
	log.order = log.order[:0]
	clear(log.prev)
	return out
}

// Add attaches a component to an entity, replacing any previous value.
func (w *World) Add(id EntityID, c Component) {
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	if log := w.changes[t]; log != nil {
		if _, seen := log.prev[id]; !seen {
			log.order = append(log.order, id)
			log.prev[id] = w.components[t][id]
		}
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// sorted by creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.alive[id] {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

// First returns the oldest entity matching the query, or NilEntity.
func (w *World) First(types ...ComponentType) EntityID {
	ids := w.Query(types...)
	if len(ids) == 0 {
		return NilEntity
	}
	return ids[0]
}
