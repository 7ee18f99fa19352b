package silo

import "sync"

// EntityOperation is a structural mutation deferred until the store is
// unlocked — the same shape as the teacher's EntityOperation (Apply(Storage)
// error), minus the error return: every operation here silently becomes a
// no-op if the target handle has gone stale by the time it runs, which is
// the only failure mode a deferred Add/Remove/RemoveSelf can have.
type EntityOperation interface {
	Apply(*Store)
}

// operationQueue buffers operations raised through a Cursor while the store
// is locked (i.e. while a World tick's parallel phases are in flight) and
// flushes them once the last lock bit clears. A mutex guards it because,
// unlike each Cursor's own entity row, the queue itself is shared across
// every worker goroutine in phase 3.
type operationQueue struct {
	mu  sync.Mutex
	ops []EntityOperation
}

func newOperationQueue() *operationQueue {
	return &operationQueue{}
}

func (q *operationQueue) enqueue(op EntityOperation) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ops = append(q.ops, op)
}

// processAll applies every queued operation, in FIFO order, then clears the
// queue. Called by Store.RemoveLock once no phase-lock bit remains.
func (q *operationQueue) processAll(s *Store) {
	q.mu.Lock()
	ops := q.ops
	q.ops = nil
	q.mu.Unlock()
	for _, op := range ops {
		op.Apply(s)
	}
}

// AddComponentOperation adds a component to an entity once the store
// unlocks, unless the entity was destroyed or recycled in the meantime.
type AddComponentOperation[T any] struct {
	Handle Handle
	Value  T
}

// Apply installs Value on Handle if Handle is still valid.
func (op AddComponentOperation[T]) Apply(s *Store) {
	if !s.IsValid(op.Handle) {
		return
	}
	addComponentDirect[T](s, op.Handle, op.Value)
}

// RemoveComponentOperation removes a component from an entity once the
// store unlocks, unless the entity was destroyed or recycled in the
// meantime.
type RemoveComponentOperation[T any] struct {
	Handle Handle
}

// Apply drops T from Handle if Handle is still valid.
func (op RemoveComponentOperation[T]) Apply(s *Store) {
	if !s.IsValid(op.Handle) {
		return
	}
	removeComponentDirect[T](s, op.Handle)
}

// DestroyEntityOperation destroys an entity once the store unlocks, unless
// it was already destroyed (and possibly recycled) in the meantime.
type DestroyEntityOperation struct {
	Handle Handle
}

// Apply destroys Handle if it is still valid.
func (op DestroyEntityOperation) Apply(s *Store) {
	if !s.IsValid(op.Handle) {
		return
	}
	s.RemoveEntity(op.Handle)
}
