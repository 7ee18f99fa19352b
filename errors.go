package silo

import "fmt"

// StaleHandleError reports access through a handle that no longer (or never
// did) match the store's current slot at that index.
type StaleHandleError struct {
	Handle Handle
}

func (e StaleHandleError) Error() string {
	return fmt.Sprintf("silo: stale or invalid entity handle %v", e.Handle)
}

// MissingComponentError reports a panicking get/get_mut call for a component
// the entity does not hold.
type MissingComponentError struct {
	Handle Handle
	Type   string
}

func (e MissingComponentError) Error() string {
	return fmt.Sprintf("silo: entity %v has no component %s", e.Handle, e.Type)
}

// DuplicateComponentTypeError reports a mut tuple-query whose requested
// types are not pairwise distinct.
type DuplicateComponentTypeError struct {
	Type string
}

func (e DuplicateComponentTypeError) Error() string {
	return fmt.Sprintf("silo: duplicate component type %s in mut tuple query", e.Type)
}

// CursorRemovedError reports use of a single-entity cursor after RemoveSelf.
type CursorRemovedError struct {
	Handle Handle
}

func (e CursorRemovedError) Error() string {
	return fmt.Sprintf("silo: cursor for entity %v used after RemoveSelf", e.Handle)
}

// GenerationExhaustedError reports an attempt to free a slot whose
// generation has already saturated; the slot is retired instead of reused.
type GenerationExhaustedError struct {
	Index uint32
}

func (e GenerationExhaustedError) Error() string {
	return fmt.Sprintf("silo: slot %d generation exhausted, retired", e.Index)
}

// ComponentRegistryFullError reports an attempt to register a new
// component or resource type past maxComponentTypes.
type ComponentRegistryFullError struct {
	Type string
	Max  int
}

func (e ComponentRegistryFullError) Error() string {
	return fmt.Sprintf("silo: cannot register component type %s, registry at maximum capacity (%d)", e.Type, e.Max)
}
