package silo

import "iter"

// ThreadSafeView is a restricted lens over a Store exposing only the
// read-only operations of the component store (§4.B) and tuple-query
// facility (§4.C) whose type parameters satisfy ThreadShareable. The
// scheduler constructs exactly one view per tick and hands shared
// references to it to every system's Prestep concurrently; this is sound
// because every operation the view exposes is read-only during the
// parallel phase it's used in (spec.md THREAD-SAFE VIEW).
type ThreadSafeView struct {
	store *Store
}

func newThreadSafeView(s *Store) *ThreadSafeView {
	return &ThreadSafeView{store: s}
}

// ViewGet fetches a single component by shared reference, panicking if the
// handle is invalid or the component is absent.
func ViewGet[T ThreadShareable](v *ThreadSafeView, h Handle) *T {
	return get[T](v.store, h)
}

// ViewTryGet fetches a single component by shared reference, returning
// ok=false instead of panicking on an invalid handle or absent component.
func ViewTryGet[T ThreadShareable](v *ThreadSafeView, h Handle) (*T, bool) {
	return tryGet[T](v.store, h)
}

// ViewEntitiesWith returns a lazy sequence over every live entity holding
// a component of type T.
func ViewEntitiesWith[T ThreadShareable](v *ThreadSafeView) iter.Seq[Handle] {
	return EntitiesWith[T](v.store)
}

// ViewCountWith returns the number of live entities holding a component of
// type T.
func ViewCountWith[T ThreadShareable](v *ThreadSafeView) int {
	return CountWith[T](v.store)
}

// ViewNthWith returns the n-th entity (in iteration order) holding a
// component of type T. Linear; see NthWith.
func ViewNthWith[T ThreadShareable](v *ThreadSafeView, n int) (Handle, bool) {
	return NthWith[T](v.store, n)
}

// ViewIsValid reports whether h is currently valid.
func ViewIsValid(v *ThreadSafeView, h Handle) bool {
	return v.store.IsValid(h)
}
