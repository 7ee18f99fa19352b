package silo

import "testing"

func TestGetTupleArities(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{X: 1, Y: 2})
	AddComponent(s, h, Velocity{X: 3, Y: 4})

	pos, vel := Get2[Position, Velocity](s, h)
	if pos.X != 1 || vel.X != 3 {
		t.Fatalf("Get2 returned unexpected values: %+v %+v", *pos, *vel)
	}

	pos2, vel2 := TryGetMut2[Position, Velocity](s, h)
	if pos2 == nil || vel2 == nil {
		t.Fatalf("TryGetMut2 returned nil for a present pair")
	}
	pos2.X = 10
	vel2.Y = 20
	if get[Position](s, h).X != 10 {
		t.Fatalf("GetMut-family must return an exclusive reference into the bag")
	}
	if get[Velocity](s, h).Y != 20 {
		t.Fatalf("GetMut-family must return an exclusive reference into the bag")
	}
}

func TestTryGetTupleMissingComponent(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{})

	pos, vel := TryGet2[Position, Velocity](s, h)
	if pos == nil {
		t.Fatalf("TryGet2 returned nil for the present Position")
	}
	if vel != nil {
		t.Fatalf("TryGet2 returned non-nil for the absent Velocity")
	}
}

func TestTryGetTupleInvalidHandle(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	s.RemoveEntity(h)

	if _, ok := TryGet1[Position](s, h); ok {
		t.Fatalf("TryGet1 reported ok=true for a stale handle")
	}
}

func TestGetMutTupleDuplicateTypePanics(t *testing.T) {
	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, Position{})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a duplicate-typed GetMut2 call")
		}
	}()
	GetMut2[Position, Position](s, h)
}

func TestGet16Arity(t *testing.T) {
	type C1 struct{ V int }
	type C2 struct{ V int }
	type C3 struct{ V int }
	type C4 struct{ V int }
	type C5 struct{ V int }
	type C6 struct{ V int }
	type C7 struct{ V int }
	type C8 struct{ V int }
	type C9 struct{ V int }
	type C10 struct{ V int }
	type C11 struct{ V int }
	type C12 struct{ V int }
	type C13 struct{ V int }
	type C14 struct{ V int }
	type C15 struct{ V int }
	type C16 struct{ V int }

	s := NewStore()
	h := s.AddEntity()
	AddComponent(s, h, C1{1})
	AddComponent(s, h, C2{2})
	AddComponent(s, h, C3{3})
	AddComponent(s, h, C4{4})
	AddComponent(s, h, C5{5})
	AddComponent(s, h, C6{6})
	AddComponent(s, h, C7{7})
	AddComponent(s, h, C8{8})
	AddComponent(s, h, C9{9})
	AddComponent(s, h, C10{10})
	AddComponent(s, h, C11{11})
	AddComponent(s, h, C12{12})
	AddComponent(s, h, C13{13})
	AddComponent(s, h, C14{14})
	AddComponent(s, h, C15{15})
	AddComponent(s, h, C16{16})

	c1, c2, c3, c4, c5, c6, c7, c8, c9, c10, c11, c12, c13, c14, c15, c16 :=
		Get16[C1, C2, C3, C4, C5, C6, C7, C8, C9, C10, C11, C12, C13, C14, C15, C16](s, h)

	if c1.V != 1 || c16.V != 16 || c8.V != 8 {
		t.Fatalf("Get16 returned a mismatched tuple: %+v .. %+v", *c1, *c16)
	}
	_ = []int{c2.V, c3.V, c4.V, c5.V, c6.V, c7.V, c9.V, c10.V, c11.V, c12.V, c13.V, c14.V, c15.V}
}
