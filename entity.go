package silo

import (
	"fmt"
	"math"

	"github.com/TheBitDrifter/bark"
)

// Handle is an opaque, forgery-resistant entity identifier: a (slot index,
// generation) pair. Handles are comparable and carry no data of their own;
// passing one around never transfers ownership of anything.
type Handle struct {
	Index      uint32
	Generation uint32
}

// String renders a handle as "idx:gen", matching the teacher's terse
// Stringer-free %v formatting used throughout its error types.
func (h Handle) String() string {
	return fmt.Sprintf("%d:%d", h.Index, h.Generation)
}

// noFree marks the end of the slot table's free list.
const noFree = math.MaxUint32

// slot is either free (tracking the next free index) or occupied (tracking
// the generation current live handles must match). retired slots have
// exhausted their generation counter and are never returned to the free
// list again (spec.md DESIGN NOTES: generational exhaustion retires the
// slot rather than wrapping).
type slot struct {
	generation uint32
	occupied   bool
	retired    bool
	nextFree   uint32
}

// entityTable is the generational slot table backing a Store. It is not
// safe for concurrent mutation; the Store serializes structural changes
// outside of the scheduler's parallel phases (see operation_queue.go).
type entityTable struct {
	slots    []slot
	freeHead uint32
	live     int
}

func newEntityTable() *entityTable {
	return &entityTable{freeHead: noFree}
}

// allocate pops the free-list head or grows the table, returning a fresh
// handle. O(1) amortised.
func (t *entityTable) allocate() Handle {
	if t.freeHead != noFree {
		idx := t.freeHead
		s := &t.slots[idx]
		t.freeHead = s.nextFree
		s.occupied = true
		t.live++
		return Handle{Index: idx, Generation: s.generation}
	}
	idx := uint32(len(t.slots))
	t.slots = append(t.slots, slot{occupied: true})
	t.live++
	return Handle{Index: idx, Generation: 0}
}

// isValid reports whether h's (index, generation) pair matches the table's
// current slot at that index.
func (t *entityTable) isValid(h Handle) bool {
	if int(h.Index) >= len(t.slots) {
		return false
	}
	s := &t.slots[h.Index]
	return s.occupied && s.generation == h.Generation
}

// free releases h's slot, bumping its generation so stale copies of h fail
// isValid forever after. Panics if h is not currently valid — freeing an
// already-free or forged handle is a programmer error. Reports whether the
// slot's generation saturated, retiring it rather than returning it to the
// free list.
func (t *entityTable) free(h Handle) bool {
	if !t.isValid(h) {
		panic(bark.AddTrace(StaleHandleError{Handle: h}))
	}
	s := &t.slots[h.Index]
	s.occupied = false
	t.live--
	if s.generation == math.MaxUint32 {
		s.retired = true
		return true
	}
	s.generation++
	s.nextFree = t.freeHead
	t.freeHead = h.Index
	return false
}

// iterateLive yields every currently-occupied handle. Order is unspecified
// and stable only between mutations of the table, matching entities_with's
// contract in spec.md COMPONENT STORE.
func (t *entityTable) iterateLive(yield func(Handle) bool) {
	for idx := range t.slots {
		s := &t.slots[idx]
		if !s.occupied {
			continue
		}
		if !yield(Handle{Index: uint32(idx), Generation: s.generation}) {
			return
		}
	}
}
