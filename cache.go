package silo

import "fmt"

// Cache is a bounded, string-keyed registry handing out small dense indices
// for items registered once and looked up often — the teacher's own
// SimpleCache[T], adapted here from a general-purpose utility into the
// store's component-type interning table (see typeID in component.go): a
// reflect.Type is registered once under its package-qualified name and
// thereafter resolved to a stable int used to index bags and reverse
// indices, instead of hashing reflect.Type on every lookup.
type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	Register(string, T) (int, error)
	Len() int
}

// SimpleCache is the default Cache implementation: a flat slice of items
// plus a name-to-index map, bounded at maxCapacity.
type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

var _ Cache[any] = &SimpleCache[any]{}

// FactoryNewCache creates a new Cache with the specified capacity.
func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}

// GetIndex returns the dense index registered under key, if any.
func (c *SimpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

// GetItem returns a pointer to the item at index.
func (c *SimpleCache[T]) GetItem(index int) *T {
	return &c.items[index]
}

// Register assigns key the next dense index and stores item there.
func (c *SimpleCache[T]) Register(key string, item T) (int, error) {
	if idx, ok := c.itemIndices[key]; ok {
		return idx, nil
	}
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, fmt.Errorf("silo: component type cache at maximum capacity (%d)", c.maxCapacity)
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}

// Len returns the number of registered items.
func (c *SimpleCache[T]) Len() int {
	return len(c.items)
}
