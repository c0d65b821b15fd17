package ecs

import "testing"

// stub component used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	if id == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if !w.Alive(id) {
		t.Fatal("expected entity to be alive after creation")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 42})

	c := w.Get(id, ComponentType(1))
	if c == nil {
		t.Fatal("expected component, got nil")
	}
	tc, ok := c.(testComp)
	if !ok {
		t.Fatal("wrong component type returned")
	}
	if tc.val != 42 {
		t.Fatalf("expected val=42, got %d", tc.val)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 7})
	w.DestroyEntity(id)

	if w.Alive(id) {
		t.Fatal("entity should not be alive after DestroyEntity")
	}
	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be gone after DestroyEntity")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with both A and B
	both := w.CreateEntity()
	w.Add(both, testComp{})
	w.Add(both, otherComp{})

	// entity with only A
	onlyA := w.CreateEntity()
	w.Add(onlyA, testComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected entity %v in results, got %v", both, results[0])
	}
}

func TestRemoveComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, testComp{val: 5})

	w.Remove(id, ComponentType(1))

	if w.Get(id, ComponentType(1)) != nil {
		t.Fatal("component should be nil after Remove")
	}
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	// Removing a component type that was never added must not panic.
	w.Remove(id, ComponentType(99))
}

func TestHasComponent(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()

	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false before Add")
	}
	w.Add(id, testComp{val: 1})
	if !w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return true after Add")
	}
	w.Remove(id, ComponentType(1))
	if w.Has(id, ComponentType(1)) {
		t.Fatal("Has should return false after Remove")
	}
}

func TestQueryExcludesDeadEntities(t *testing.T) {
	w := NewWorld()
	alive := w.CreateEntity()
	w.Add(alive, testComp{})

	dead := w.CreateEntity()
	w.Add(dead, testComp{})
	w.DestroyEntity(dead)

	results := w.Query(ComponentType(1))
	for _, id := range results {
		if id == dead {
			t.Fatal("Query returned a destroyed entity")
		}
	}
	if len(results) != 1 || results[0] != alive {
		t.Fatalf("expected only the alive entity; got %v", results)
	}
}

func TestQueryIsSortedByCreation(t *testing.T) {
	w := NewWorld()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := w.CreateEntity()
		w.Add(id, testComp{val: i})
		want = append(want, id)
	}
	got := w.Query(ComponentType(1))
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("result %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if w.First(ComponentType(1)) != want[0] {
		t.Fatal("First should return the oldest match")
	}
}

func TestTrackRecordsFirstPreviousValue(t *testing.T) {
	w := NewWorld()
	w.Track(ComponentType(1))
	a := w.CreateEntity()
	b := w.CreateEntity()

	w.Add(b, testComp{val: 1})
	w.Add(a, testComp{val: 1})
	changes := w.TakeChanges(ComponentType(1))
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].ID != a || changes[1].ID != b {
		t.Fatalf("changes not in creation order: %v", changes)
	}
	if changes[0].Prev != nil {
		t.Fatal("newly added component should have nil Prev")
	}

	w.Add(a, testComp{val: 2})
	w.Add(a, testComp{val: 3})
	changes = w.TakeChanges(ComponentType(1))
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if prev, ok := changes[0].Prev.(testComp); !ok || prev.val != 1 {
		t.Fatalf("expected Prev val=1, got %v", changes[0].Prev)
	}
	if cur := w.Get(a, ComponentType(1)).(testComp); cur.val != 3 {
		t.Fatalf("expected current val=3, got %d", cur.val)
	}

	if len(w.TakeChanges(ComponentType(1))) != 0 {
		t.Fatal("TakeChanges should clear the log")
	}
}

func TestTakeChangesSkipsDestroyed(t *testing.T) {
	w := NewWorld()
	w.Track(ComponentType(1))
	id := w.CreateEntity()
	w.Add(id, testComp{val: 1})
	w.DestroyEntity(id)
	if len(w.TakeChanges(ComponentType(1))) != 0 {
		t.Fatal("destroyed entity should not be reported")
	}
}

func TestUntrackedTypeHasNoChanges(t *testing.T) {
	w := NewWorld()
	id := w.CreateEntity()
	w.Add(id, otherComp{})
	if w.TakeChanges(ComponentType(2)) != nil {
		t.Fatal("untracked type should report no changes")
	}
}
