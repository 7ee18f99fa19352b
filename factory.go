package silo

// factory implements the teacher's factory pattern for silo's top-level
// constructors, keeping Store and World construction behind a single
// package-level entry point rather than exported New* functions scattered
// across files.
type factory struct{}

// Factory is the global factory instance for creating silo components.
var Factory factory

// NewStore creates a new, empty Store.
func (f factory) NewStore() *Store {
	return NewStore()
}

// NewWorld creates a new World over store.
func (f factory) NewWorld(store *Store, opts ...WorldOption) *World {
	return NewWorld(store, opts...)
}
