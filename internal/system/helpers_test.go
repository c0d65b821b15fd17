package system

import (
	"testing/fstest"
	"time"

	"survivors/internal/assetstore"
	"survivors/internal/behavior"
	"survivors/internal/component"
	"survivors/internal/definition"
	"survivors/internal/ecs"
	"survivors/internal/factory"
	"survivors/internal/inventory"
	"survivors/internal/logging"
	"survivors/internal/vec"
)

const tick = 16 * time.Millisecond

// bareResources returns resources without an asset store, for systems that
// never touch definitions.
func bareResources() *Resources {
	return &Resources{
		Inventory: inventory.New(),
		Log:       logging.Discard(),
	}
}

// loadedResources returns resources over fsys with every load finished.
func loadedResources(fsys fstest.MapFS) *Resources {
	store := assetstore.New(fsys, logging.Discard())
	definition.RegisterLoaders(store)
	res := NewResources(store, 7, logging.Discard(), nil)
	store.Wait()
	return res
}

func placePlayer(w *ecs.World, at vec.Vec2) ecs.EntityID {
	id := factory.NewPlayer(w)
	w.Add(id, component.Transform{Pos: at})
	return id
}

func placeEnemy(w *ecs.World, at vec.Vec2, health float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{Pos: at})
	w.Add(id, component.Sprite{Size: vec.Vec2{X: 30, Y: 30}, Alpha: 1})
	w.Add(id, component.Damageable{Health: health, MaxHealth: health})
	w.Add(id, component.Velocity{})
	w.Add(id, component.Enemy{ID: "goblin", XPValue: 20})
	w.Add(id, component.TagEnemy{})
	return id
}

func ready(d time.Duration) component.Timer {
	t := component.NewTimer(d, component.Once)
	t.Tick(d)
	return t
}

func health(w *ecs.World, id ecs.EntityID) float64 {
	return w.Get(id, component.CDamageable).(component.Damageable).Health
}

func pos(w *ecs.World, id ecs.EntityID) vec.Vec2 {
	return w.Get(id, component.CTransform).(component.Transform).Pos
}

func velocity(w *ecs.World, id ecs.EntityID) vec.Vec2 {
	return w.Get(id, component.CVelocity).(component.Velocity).Vec2
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}

var gunTemplate = component.ProjectileTemplate{
	Damage:   10,
	Speed:    300,
	Lifetime: 3,
	Size:     behavior.Size{W: 10, H: 5},
}
