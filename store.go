package silo

import (
	"iter"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

// Store is the single source of truth for entities, their components, and
// process-scoped resources. It is the "B" and "C" components of the
// design: a type-erased per-entity bag plus a per-type reverse index, and
// a type-keyed resource table alongside it.
//
// Store is not safe for unsynchronized concurrent structural mutation
// (AddEntity, RemoveEntity, AddComponent, RemoveComponent) — the scheduler
// is the only caller expected to touch it from multiple goroutines, and it
// does so only through the restricted, row-disjoint Cursor (see cursor.go)
// while the store is locked, deferring any structural change to the
// operation queue until the lock is released (see operation_queue.go).
type Store struct {
	entities *entityTable

	// bags[slotIndex] is nil until the entity first gains a component.
	bags [][]bagEntry

	// typeLists[slotIndex] records, in insertion order, which type IDs the
	// entity's bag currently holds — driving cleanup on RemoveEntity and
	// keeping ComponentTypesOf introspection cheap.
	typeLists [][]int

	// reverse[typeID][slotIndex] holds the entity for every live entity
	// that currently carries that component type.
	reverse []map[uint32]Handle

	resources     map[int]any
	resourceOrder []int

	locks mask.Mask256
	queue *operationQueue
}

// bagEntry pairs a component's dense type ID with its boxed value so a
// per-entity bag can be a flat slice instead of a map — entities rarely
// carry more than a handful of component types, so linear scan over a
// short slice beats a map's overhead both in time and allocations.
type bagEntry struct {
	typeID int
	value  any
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		entities: newEntityTable(),
		resources: make(map[int]any),
		queue:     newOperationQueue(),
	}
}

// IsValid reports whether h matches the store's current slot at h.Index.
func (s *Store) IsValid(h Handle) bool {
	return s.entities.isValid(h)
}

func (s *Store) mustValid(h Handle) {
	if !s.entities.isValid(h) {
		panic(bark.AddTrace(StaleHandleError{Handle: h}))
	}
}

// AddEntity creates an empty entity. O(1) amortised.
func (s *Store) AddEntity() Handle {
	h := s.entities.allocate()
	s.growTo(h.Index)
	if Config.events.OnEntityCreated != nil {
		Config.events.OnEntityCreated(h)
	}
	return h
}

func (s *Store) growTo(idx uint32) {
	n := int(idx) + 1
	for len(s.bags) < n {
		s.bags = append(s.bags, nil)
		s.typeLists = append(s.typeLists, nil)
	}
}

// RemoveEntity destroys an entity, purging every reverse-index entry for
// its components before freeing its slot. O(k) in the number of
// components the entity holds. Panics if h is not currently valid.
func (s *Store) RemoveEntity(h Handle) {
	s.mustValid(h)
	idx := h.Index
	for _, id := range s.typeLists[idx] {
		if int(id) < len(s.reverse) && s.reverse[id] != nil {
			delete(s.reverse[id], idx)
		}
	}
	s.bags[idx] = nil
	s.typeLists[idx] = nil
	if retired := s.entities.free(h); retired {
		Config.logger.Sugar().Warnw(GenerationExhaustedError{Index: h.Index}.Error())
	}
	if Config.events.OnEntityRemoved != nil {
		Config.events.OnEntityRemoved(h)
	}
}

// IterateLive yields every currently-live entity handle.
func (s *Store) IterateLive() iter.Seq[Handle] {
	return s.entities.iterateLive
}

// LiveCount returns the number of currently-live entities.
func (s *Store) LiveCount() int {
	return s.entities.live
}

func (s *Store) ensureReverse(id int) map[uint32]Handle {
	for len(s.reverse) <= id {
		s.reverse = append(s.reverse, nil)
	}
	if s.reverse[id] == nil {
		s.reverse[id] = make(map[uint32]Handle)
	}
	return s.reverse[id]
}

func (s *Store) bagIndex(idx uint32, id int) int {
	for i, e := range s.bags[idx] {
		if e.typeID == id {
			return i
		}
	}
	return -1
}

// addComponentDirect inserts or overwrites T on h, bypassing the lock/queue
// discipline. Called directly when the store is unlocked, and from queued
// operations once a lock is released.
func addComponentDirect[T any](s *Store, h Handle, value T) {
	s.mustValid(h)
	id := typeID[T]()
	idx := h.Index
	v := new(T)
	*v = value
	if i := s.bagIndex(idx, id); i >= 0 {
		s.bags[idx][i].value = v
		return
	}
	s.bags[idx] = append(s.bags[idx], bagEntry{typeID: id, value: v})
	s.typeLists[idx] = append(s.typeLists[idx], id)
	s.ensureReverse(id)[idx] = h
	if Config.events.OnComponentAdded != nil {
		Config.events.OnComponentAdded(h, typeOf[T]().String())
	}
}

// removeComponentDirect drops T from h if present; no-op otherwise.
func removeComponentDirect[T any](s *Store, h Handle) {
	s.mustValid(h)
	id := typeID[T]()
	idx := h.Index
	i := s.bagIndex(idx, id)
	if i < 0 {
		return
	}
	bag := s.bags[idx]
	s.bags[idx] = append(bag[:i], bag[i+1:]...)
	list := s.typeLists[idx]
	for j, tid := range list {
		if tid == id {
			s.typeLists[idx] = append(list[:j], list[j+1:]...)
			break
		}
	}
	if id < len(s.reverse) && s.reverse[id] != nil {
		delete(s.reverse[id], idx)
	}
	if Config.events.OnComponentRemoved != nil {
		Config.events.OnComponentRemoved(h, typeOf[T]().String())
	}
}

// AddComponent inserts or overwrites a component of type T on h. Overwriting
// an existing component does not duplicate its entry in the entity's type
// list. Panics if h is invalid.
func AddComponent[T any](s *Store, h Handle, value T) {
	addComponentDirect[T](s, h, value)
}

// RemoveComponent drops T from h; a no-op if the entity does not hold T.
// Panics if h is invalid.
func RemoveComponent[T any](s *Store, h Handle) {
	removeComponentDirect[T](s, h)
}

// Has reports whether h currently holds a component of type T.
func Has[T any](s *Store, h Handle) bool {
	_, ok := tryGet[T](s, h)
	return ok
}

// get is the shared implementation backing the tuple-query Get* family:
// O(1) lookup, panicking if h is invalid or T is absent.
func get[T any](s *Store, h Handle) *T {
	s.mustValid(h)
	id := typeID[T]()
	idx := h.Index
	i := s.bagIndex(idx, id)
	if i < 0 {
		panic(bark.AddTrace(MissingComponentError{Handle: h, Type: typeOf[T]().String()}))
	}
	return s.bags[idx][i].value.(*T)
}

// tryGet is the shared implementation backing the tuple-query TryGet*
// family: never panics, reporting absence (of either the handle or the
// component) via ok=false.
func tryGet[T any](s *Store, h Handle) (*T, bool) {
	if !s.entities.isValid(h) {
		return nil, false
	}
	id := typeID[T]()
	idx := h.Index
	i := s.bagIndex(idx, id)
	if i < 0 {
		return nil, false
	}
	return s.bags[idx][i].value.(*T), true
}

// EntitiesWith returns a lazy sequence over every live entity currently
// holding a component of type T. Iteration order is unspecified but stable
// between mutations of T's reverse index.
func EntitiesWith[T any](s *Store) iter.Seq[Handle] {
	id := typeID[T]()
	return func(yield func(Handle) bool) {
		if id >= len(s.reverse) || s.reverse[id] == nil {
			return
		}
		m := s.reverse[id]
		for idx := range s.bags {
			h, ok := m[uint32(idx)]
			if !ok {
				continue
			}
			if !yield(h) {
				return
			}
		}
	}
}

// CountWith returns the number of live entities holding a component of
// type T. O(1).
func CountWith[T any](s *Store) int {
	id := typeID[T]()
	if id >= len(s.reverse) || s.reverse[id] == nil {
		return 0
	}
	return len(s.reverse[id])
}

// NthWith returns the n-th entity (in EntitiesWith's iteration order)
// holding a component of type T. Linear in the size of the slot table;
// callers iterating repeatedly should prefer EntitiesWith.
func NthWith[T any](s *Store, n int) (Handle, bool) {
	id := typeID[T]()
	if id >= len(s.reverse) || s.reverse[id] == nil {
		return Handle{}, false
	}
	m := s.reverse[id]
	i := 0
	for idx := range s.bags {
		h, ok := m[uint32(idx)]
		if !ok {
			continue
		}
		if i == n {
			return h, true
		}
		i++
	}
	return Handle{}, false
}

// Locked reports whether any phase-lock bit is currently set.
func (s *Store) Locked() bool {
	return !s.locks.IsEmpty()
}

// AddLock sets a phase-lock bit, deferring structural mutation issued via
// a Cursor (Add/Remove/RemoveSelf) to the operation queue until every bit
// is cleared again.
func (s *Store) AddLock(bit uint32) {
	s.locks.Mark(bit)
}

// RemoveLock clears a phase-lock bit and, once no bits remain set, applies
// every operation queued while the store was locked, in FIFO order.
func (s *Store) RemoveLock(bit uint32) {
	s.locks.Unmark(bit)
	if s.locks.IsEmpty() {
		s.queue.processAll(s)
	}
}
