/*
Package silo provides an Entity-Component-System (ECS) runtime for games and
simulations.

Silo stores components in per-entity bags rather than archetype tables: each
live entity owns a type-keyed map of components, and the store maintains a
reverse index per component type for "all entities with T" queries. This
trades some cache locality for O(1) add/remove-component and sparse,
heterogeneous entities that change shape often.

Core Concepts:

  - Handle: a generational (slot index, generation) pair identifying an entity.
  - Component: any value type attached to a handle under its own type.
  - Store: the bag storage, reverse indices, and resource table.
  - Tuple query: a single call fetching N components off one entity.
  - ThreadSafeView / Cursor: restricted lenses that let the scheduler hand
    component access to parallel workers without hand-written locking.
  - World: the three-phase tick scheduler (prestep, per-entity, run).

Basic Usage:

	store := silo.NewStore()

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	e := store.AddEntity()
	silo.AddComponent(store, e, Position{})
	silo.AddComponent(store, e, Velocity{X: 1, Y: 1})

	pos, vel := silo.GetMut2[Position, Velocity](store, e)
	pos.X += vel.X
	pos.Y += vel.Y

	for h := range silo.EntitiesWith[Position](store) {
		_ = h
	}

Silo has no file, network, or CLI surface; it is an in-process library.
*/
package silo
