/*
Package crate provides a small Entity-Component-System (ECS) store for single-threaded games and simulations.

Crate favours a simple API that is easy to iterate with over raw throughput. Every component type
lives in its own dense storage indexed by entity index, and queries intersect those storages on the fly.

Core Concepts:

  - Entity: A handle (index + generation) identifying an object in a World.
  - Component: A typed value attached to at most one entity at a time, stored per type.
  - Storage: The container of every value of one component type, indexed by entity index.
  - Cursor: An iteration over the entities that have all of a set of component types.

Basic Usage:

	world := crate.Factory.NewWorld()

	// Define and register components
	position := crate.FactoryNewComponent[Position]()
	velocity := crate.FactoryNewComponent[Velocity]()
	world.Register(position, velocity)

	// Create entities
	world.NewEntity(position.With(Position{}), velocity.With(Velocity{X: 1}))

	// Query entities and process them
	cursor, _ := world.Query(position, velocity)
	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Borrowing:

A cursor holds exclusive access to every storage it iterates until it is exhausted or closed.
Opening a second cursor over an overlapping set of components, or reading or writing one of
those components outside the cursor while it is open, panics with a BorrowConflictError.
Mutations that must happen during iteration can be queued with the Enqueue methods; they are
applied once the last open cursor closes.
*/
package crate
