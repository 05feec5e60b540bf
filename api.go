package crate

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// MaxQueryComponents is the largest number of component types a single cursor may join.
const MaxQueryComponents = 12

type Query interface {
	And(components ...Component) Query
	Components() []Component
	Matches(w *World, e Entity) (bool, error)
	Cursor(w *World) (*Cursor, error)
}

type iCursor interface {
	Next() bool
	Entity() Entity
	Index() int
	Entities() iter.Seq[Entity]
	Rows() iter.Seq[*Cursor]
	Collect() []Entity
	Close()
}

// Warning: holds exclusive borrows until exhausted or closed!
type Cursor struct {
	world *World

	// The joined component types, in query order
	components []Component
	ids        []table.ElementTypeID

	// Borrows owned by the cursor and the storages they grant
	guards   []*exclusiveGuard
	storages []componentStorage

	// Iteration state
	next    int
	current int
	done    bool
}

// AccessibleComponent extends a component identity with typed access to its storage
// in a World. It provides methods to read and write values per entity or at a cursor.
type AccessibleComponent[T any] struct {
	table.ElementType
}

// Ref is a shared reference to a stored component. The component type cannot be
// borrowed exclusively until every outstanding Ref to it is released.
type Ref[T any] struct {
	value *T
	guard *sharedGuard
}
