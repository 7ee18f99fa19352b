package silo

import "testing"

// TestAddComponentValueEquality is invariant 4: after AddComponent then
// TryGet, the result holds the added value by value equality.
func TestAddComponentValueEquality(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()

	AddComponent(s, h, Position{X: 3, Y: 4})

	got, ok := tryGet[Position](s, h)
	if !ok {
		t.Fatalf("expected Position present after AddComponent")
	}
	if got.X != 3 || got.Y != 4 {
		t.Fatalf("got %+v, want {3 4}", *got)
	}
}

// TestAddComponentOverwrite is invariant 5 and scenario S2: adding a
// component a second time overwrites the value and leaves exactly one
// entry for that type in the entity's type list.
func TestAddComponentOverwrite(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()

	AddComponent(s, h, Position{X: 0, Y: 0})
	AddComponent(s, h, Position{X: 6, Y: 1})

	got := get[Position](s, h)
	if got.X != 6 || got.Y != 1 {
		t.Fatalf("got %+v, want {6 1}", *got)
	}

	count := 0
	for _, id := range s.typeLists[h.Index] {
		if id == typeID[Position]() {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("type list holds Position %d times, want 1", count)
	}
}

// TestEntitiesWithReflectsBags is invariants 1 and 2: every live handle
// holding T appears in entities_with<T>, and every handle entities_with<T>
// yields resolves via try_get<T>.
func TestEntitiesWithReflectsBags(t *testing.T) {
	s := NewStore()
	h1 := s.AddEntity()
	h2 := s.AddEntity()
	h3 := s.AddEntity()

	AddComponent(s, h1, Position{})
	AddComponent(s, h2, Position{})
	AddComponent(s, h3, Velocity{})

	seen := map[Handle]bool{}
	for h := range EntitiesWith[Position](s) {
		seen[h] = true
		if _, ok := tryGet[Position](s, h); !ok {
			t.Fatalf("entities_with<Position> yielded %v but try_get found nothing", h)
		}
	}
	if len(seen) != 2 || !seen[h1] || !seen[h2] {
		t.Fatalf("entities_with<Position> = %v, want {%v, %v}", seen, h1, h2)
	}

	if got := CountWith[Position](s); got != 2 {
		t.Fatalf("CountWith[Position] = %d, want 2", got)
	}
}

// TestRemoveEntityPurgesReverseIndex is invariant 3 and scenario S3: after
// remove_entity, is_valid is false and the handle is absent from every
// entities_with<T> it used to belong to.
func TestRemoveEntityPurgesReverseIndex(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{})
	AddComponent(s, h, Velocity{})

	s.RemoveEntity(h)

	if s.IsValid(h) {
		t.Fatalf("handle still valid after RemoveEntity")
	}
	if CountWith[Position](s) != 0 {
		t.Fatalf("Position reverse index not purged")
	}
	if CountWith[Velocity](s) != 0 {
		t.Fatalf("Velocity reverse index not purged")
	}
}

// TestRemoveAndRecycle is scenario S3 end to end: the recycled handle sees
// none of the removed entity's components, and Get1 through the stale handle
// panics. The TryGet family does not panic on a stale handle; it reports
// absence instead (see TestTryGetTupleInvalidHandle).
func TestRemoveAndRecycle(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{X: 1, Y: 1})
	AddComponent(s, h, Velocity{X: 1, Y: 1})

	s.RemoveEntity(h)
	h2 := s.AddEntity()

	if h == h2 {
		t.Fatalf("recycled handle must differ from the removed one")
	}
	if _, ok := TryGet1[Position](s, h2); ok {
		t.Fatalf("recycled entity must not see the old Position")
	}
	if _, ok := TryGet1[Velocity](s, h2); ok {
		t.Fatalf("recycled entity must not see the old Velocity")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic accessing a stale handle")
		}
	}()
	Get1[Position](s, h)
}

func TestRemoveComponentIsNoopWhenAbsent(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	RemoveComponent[Position](s, h) // must not panic

	AddComponent(s, h, Position{})
	RemoveComponent[Position](s, h)
	if Has[Position](s, h) {
		t.Fatalf("Position still present after RemoveComponent")
	}
}

func TestAddEntityWith(t *testing.T) {
	s := NewStore()
	h := AddEntityWith2(s, Position{X: 1, Y: 2}, Velocity{X: 3, Y: 4})

	pos, vel := Get2[Position, Velocity](s, h)
	if pos.X != 1 || pos.Y != 2 || vel.X != 3 || vel.Y != 4 {
		t.Fatalf("got pos=%+v vel=%+v, unexpected", *pos, *vel)
	}
}

func TestComponentTypesOf(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{})
	AddComponent(s, h, Velocity{})

	types := ComponentTypesOf(s, h)
	if len(types) != 2 {
		t.Fatalf("ComponentTypesOf returned %d types, want 2", len(types))
	}
	if types[0] != typeOf[Position]() || types[1] != typeOf[Velocity]() {
		t.Fatalf("ComponentTypesOf = %v, want insertion order [Position Velocity]", types)
	}
}
