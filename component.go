package silo

import (
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// maxComponentTypes bounds how many distinct component (or resource) types
// a process may register. 256 is a generous, arbitrary ceiling for a single
// process's component/resource vocabulary; registration past it is a
// programmer error (see typeID), not a capacity anyone is expected to
// reach in practice.
const maxComponentTypes = 256

// typeRegistry interns component types into dense indices, the way the
// teacher's globalEntryIndex/globalEntities package vars intern entities.
// Bags and reverse indices are keyed by this index rather than by
// reflect.Type directly.
var typeRegistry = FactoryNewCache[reflect.Type](maxComponentTypes)

// typeOf returns T's reflect.Type without needing a value in hand.
func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// typeID returns T's dense registry index, registering it on first use.
func typeID[T any]() int {
	t := typeOf[T]()
	if idx, ok := typeRegistry.GetIndex(t.String()); ok {
		return idx
	}
	idx, err := typeRegistry.Register(t.String(), t)
	if err != nil {
		panic(bark.AddTrace(ComponentRegistryFullError{Type: t.String(), Max: maxComponentTypes}))
	}
	return idx
}

// ComponentTypesOf returns the reflect.Type of every component h currently
// holds, in the order they were added (overwrites keep their original
// position) — the bag model's equivalent of the teacher's
// Entity.Components(). Panics if h is invalid.
func ComponentTypesOf(s *Store, h Handle) []reflect.Type {
	s.mustValid(h)
	ids := s.typeLists[h.Index]
	out := make([]reflect.Type, len(ids))
	for i, id := range ids {
		out[i] = *typeRegistry.GetItem(id)
	}
	return out
}
