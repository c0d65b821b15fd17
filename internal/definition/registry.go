package definition

import (
	"math/rand"

	"survivors/internal/assetstore"
)

// Registry maps IDs to definition handles in the asset store. Lookups never
// block: an ID whose file is still loading simply does not resolve yet.
type Registry[T any] struct {
	store   *assetstore.Store
	ids     []string
	handles map[string]assetstore.Handle
}

// WeaponRegistry resolves weapon definitions.
type WeaponRegistry = Registry[*Weapon]

// EnemyRegistry resolves enemy definitions.
type EnemyRegistry = Registry[*Enemy]

// NewWeaponRegistry requests every weapon listed in cfg.
func NewWeaponRegistry(s *assetstore.Store, cfg *GameConfig) *WeaponRegistry {
	return newRegistry[*Weapon](s, cfg.WeaponIDs, WeaponPath)
}

// NewEnemyRegistry requests every enemy listed in cfg.
func NewEnemyRegistry(s *assetstore.Store, cfg *GameConfig) *EnemyRegistry {
	return newRegistry[*Enemy](s, cfg.EnemyIDs, EnemyPath)
}

func newRegistry[T any](s *assetstore.Store, ids []string, path func(string) string) *Registry[T] {
	r := &Registry[T]{
		store:   s,
		handles: make(map[string]assetstore.Handle, len(ids)),
	}
	for _, id := range ids {
		if _, dup := r.handles[id]; dup {
			continue
		}
		r.ids = append(r.ids, id)
		r.handles[id] = s.Load(path(id))
	}
	return r
}

// Resolve returns the definition for id once it has loaded.
func (r *Registry[T]) Resolve(id string) (T, bool) {
	var zero T
	h, ok := r.handles[id]
	if !ok {
		return zero, false
	}
	return assetstore.Get[T](r.store, h)
}

// Known reports whether id was listed in the configuration.
func (r *Registry[T]) Known(id string) bool {
	_, ok := r.handles[id]
	return ok
}

// IDs returns the known IDs in configuration order.
func (r *Registry[T]) IDs() []string {
	return r.ids
}

// RandomID picks a known ID uniformly. It reports false when there are none.
func (r *Registry[T]) RandomID(rng *rand.Rand) (string, bool) {
	if len(r.ids) == 0 {
		return "", false
	}
	return r.ids[rng.Intn(len(r.ids))], true
}

// Pending returns the IDs whose definitions have not finished loading.
func (r *Registry[T]) Pending() []string {
	var out []string
	for _, id := range r.ids {
		if r.store.State(r.handles[id]) == assetstore.Loading {
			out = append(out, id)
		}
	}
	return out
}

// Failed returns the IDs whose definitions could not be loaded.
func (r *Registry[T]) Failed() []string {
	var out []string
	for _, id := range r.ids {
		if r.store.State(r.handles[id]) == assetstore.Failed {
			out = append(out, id)
		}
	}
	return out
}
