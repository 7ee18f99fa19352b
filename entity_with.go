package silo

// AddEntityWith constructs an entity and inserts its initial components in
// one call — spec.md's add_entity_with(tuple<T1,...,Tn>). Duplicate types
// within the tuple overwrite left to right, the same as calling
// AddComponent repeatedly. Arities 1..8 cover the common cases; a cursor
// or repeated AddComponent calls handle anything larger.

// AddEntityWith1 creates an entity with 1 initial component(s).
func AddEntityWith1[T1 any](s *Store, v1 T1) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	return h
}

// AddEntityWith2 creates an entity with 2 initial component(s).
func AddEntityWith2[T1 any, T2 any](s *Store, v1 T1, v2 T2) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	return h
}

// AddEntityWith3 creates an entity with 3 initial component(s).
func AddEntityWith3[T1 any, T2 any, T3 any](s *Store, v1 T1, v2 T2, v3 T3) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	return h
}

// AddEntityWith4 creates an entity with 4 initial component(s).
func AddEntityWith4[T1 any, T2 any, T3 any, T4 any](s *Store, v1 T1, v2 T2, v3 T3, v4 T4) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	AddComponent(s, h, v4)
	return h
}

// AddEntityWith5 creates an entity with 5 initial component(s).
func AddEntityWith5[T1 any, T2 any, T3 any, T4 any, T5 any](s *Store, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	AddComponent(s, h, v4)
	AddComponent(s, h, v5)
	return h
}

// AddEntityWith6 creates an entity with 6 initial component(s).
func AddEntityWith6[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any](s *Store, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	AddComponent(s, h, v4)
	AddComponent(s, h, v5)
	AddComponent(s, h, v6)
	return h
}

// AddEntityWith7 creates an entity with 7 initial component(s).
func AddEntityWith7[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any](s *Store, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	AddComponent(s, h, v4)
	AddComponent(s, h, v5)
	AddComponent(s, h, v6)
	AddComponent(s, h, v7)
	return h
}

// AddEntityWith8 creates an entity with 8 initial component(s).
func AddEntityWith8[T1 any, T2 any, T3 any, T4 any, T5 any, T6 any, T7 any, T8 any](s *Store, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Handle {
	h := s.AddEntity()
	AddComponent(s, h, v1)
	AddComponent(s, h, v2)
	AddComponent(s, h, v3)
	AddComponent(s, h, v4)
	AddComponent(s, h, v5)
	AddComponent(s, h, v6)
	AddComponent(s, h, v7)
	AddComponent(s, h, v8)
	return h
}
