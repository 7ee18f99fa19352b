package silo

import "github.com/TheBitDrifter/bark"

// Cursor is a lens bound to exactly one entity, carrying the proof that
// only that entity's row of the Store is in play — the thing that makes
// dispatching single_entity_step over entities in parallel sound (spec.md
// SINGLE-ENTITY CURSOR, SCHEDULER). Every generic accessor is constrained
// to ThreadShareable for the same reason ThreadSafeView's are.
//
// Structural changes (Add/Remove/RemoveSelf) issued while the owning
// Store is locked are deferred to the operation queue rather than applied
// in place: although two cursors never touch the same entity's bag
// concurrently, they do share the Store's reverse index, and mutating a
// map from multiple goroutines at once is a race regardless of which keys
// are touched.
type Cursor struct {
	store   *Store
	handle  Handle
	removed bool
}

func newCursor(s *Store, h Handle) *Cursor {
	return &Cursor{store: s, handle: h}
}

func (c *Cursor) mustLive() {
	if c.removed {
		panic(bark.AddTrace(CursorRemovedError{Handle: c.handle}))
	}
}

// ID returns the handle this cursor is bound to. Panics after RemoveSelf.
func (c *Cursor) ID() Handle {
	c.mustLive()
	return c.handle
}

// RemoveSelf destroys this cursor's entity. Deferred to the operation queue
// if the store is locked. Any further call on this cursor panics.
func (c *Cursor) RemoveSelf() {
	c.mustLive()
	c.removed = true
	if c.store.Locked() {
		c.store.queue.enqueue(DestroyEntityOperation{Handle: c.handle})
		return
	}
	c.store.RemoveEntity(c.handle)
}

// CursorHas reports whether this cursor's entity currently holds a
// component of type T.
func CursorHas[T ThreadShareable](c *Cursor) bool {
	c.mustLive()
	_, ok := tryGet[T](c.store, c.handle)
	return ok
}

// CursorAdd inserts or overwrites a component of type T on this cursor's
// entity, deferring to the operation queue if the store is locked.
func CursorAdd[T ThreadShareable](c *Cursor, value T) {
	c.mustLive()
	if c.store.Locked() {
		c.store.queue.enqueue(AddComponentOperation[T]{Handle: c.handle, Value: value})
		return
	}
	addComponentDirect[T](c.store, c.handle, value)
}

// CursorRemove drops a component of type T from this cursor's entity (a
// no-op if absent), deferring to the operation queue if the store is
// locked.
func CursorRemove[T ThreadShareable](c *Cursor) {
	c.mustLive()
	if c.store.Locked() {
		c.store.queue.enqueue(RemoveComponentOperation[T]{Handle: c.handle})
		return
	}
	removeComponentDirect[T](c.store, c.handle)
}

// CursorGet fetches a single component from this cursor's entity by
// shared reference, panicking if absent.
func CursorGet[T ThreadShareable](c *Cursor) *T {
	c.mustLive()
	return get[T](c.store, c.handle)
}

// CursorGetMut fetches a single component from this cursor's entity by
// exclusive reference, panicking if absent.
func CursorGetMut[T ThreadShareable](c *Cursor) *T {
	c.mustLive()
	return get[T](c.store, c.handle)
}

// CursorTryGet fetches a single component from this cursor's entity,
// returning ok=false instead of panicking if absent.
func CursorTryGet[T ThreadShareable](c *Cursor) (*T, bool) {
	c.mustLive()
	return tryGet[T](c.store, c.handle)
}

// CursorTryGetMut fetches a single component from this cursor's entity by
// exclusive reference, returning ok=false instead of panicking if absent.
func CursorTryGetMut[T ThreadShareable](c *Cursor) (*T, bool) {
	c.mustLive()
	return tryGet[T](c.store, c.handle)
}
