package silo

// ThreadShareable marks a component or resource type as safe to send to and
// access from a scheduler worker goroutine. It gates every generic
// operation ThreadSafeView and Cursor expose: a type argument that does not
// satisfy ThreadShareable fails to compile, which is what makes the
// parallel phases (prestep, single_entity_step) sound without any runtime
// check (spec.md CONCURRENCY & RESOURCE MODEL — "the gate is a
// compile-time constraint").
type ThreadShareable interface {
	threadShareable()
}

// Shareable is embedded in a component or resource struct to satisfy
// ThreadShareable. It adds no fields and no runtime cost — the same
// zero-cost marker-embedding idiom the standard library uses for
// interface-companion types.
//
//	type Position struct {
//		silo.Shareable
//		X, Y float64
//	}
type Shareable struct{}

func (Shareable) threadShareable() {}
