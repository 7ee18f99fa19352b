package silo

// Updatable is the resource capability: a type opts into the scheduler's
// serial per-tick update phase by implementing Update. Resources that don't
// implement it are driven with a no-op, the Go equivalent of spec.md's
// "update(&mut self) method (default empty)" without needing a base class.
type Updatable interface {
	Update()
}

// AddResource installs (or overwrites) the process-scoped singleton of
// type T. Adding an existing type overwrites the prior value but keeps its
// original position in update order.
func AddResource[T any](s *Store, value T) {
	id := typeID[T]()
	v := new(T)
	*v = value
	if _, exists := s.resources[id]; !exists {
		s.resourceOrder = append(s.resourceOrder, id)
	}
	s.resources[id] = v
}

// GetResource returns the resource of type T and whether it was registered
// — resource absence is a valid, recoverable outcome (spec.md names only
// `get_resource`/`get_resource_mut`, with no separate fallible variant, and
// a resource downcast failure, not absence, is the taxonomy's must-panic
// case, which Go's typed storage makes unreachable).
func GetResource[T any](s *Store) (*T, bool) {
	id := typeID[T]()
	v, ok := s.resources[id]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// GetResourceMut is GetResource's name for the exclusive-access case; Go has
// no separate mutable-reference type, so it returns the same pointer.
func GetResourceMut[T any](s *Store) (*T, bool) {
	return GetResource[T](s)
}

// RemoveResource drops the resource of type T, if present.
func RemoveResource[T any](s *Store) {
	id := typeID[T]()
	if _, ok := s.resources[id]; !ok {
		return
	}
	delete(s.resources, id)
	for i, rid := range s.resourceOrder {
		if rid == id {
			s.resourceOrder = append(s.resourceOrder[:i], s.resourceOrder[i+1:]...)
			break
		}
	}
}

// updateResources drives every resource's Update, in registration order,
// serially — World.Tick's phase 1.
func (s *Store) updateResources() {
	for _, id := range s.resourceOrder {
		if u, ok := s.resources[id].(Updatable); ok {
			u.Update()
		}
	}
}
