package crate

import "fmt"

// DeadEntityError is returned when a handle's index is known but its generation is stale.
type DeadEntityError struct {
	Entity Entity
}

func (e DeadEntityError) Error() string {
	return fmt.Sprintf("entity '%v' is no longer alive", e.Entity)
}

// UnknownEntityError is returned when inserting on an index the world never handed out.
// Reads and removals on such an index report absence instead; only insertion has no
// slot to attach to, so it is the one recoverable error beyond DeadEntityError and
// UnregisteredComponentError.
type UnknownEntityError struct {
	Entity Entity
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("entity '%v' was never allocated", e.Entity)
}

type UnregisteredComponentError struct {
	Component Component
}

func (e UnregisteredComponentError) Error() string {
	return fmt.Sprintf("attempt to access unregistered component: %T", e.Component)
}

type ComponentRegisteredError struct {
	Component Component
}

func (e ComponentRegisteredError) Error() string {
	return fmt.Sprintf("component already registered: %T", e.Component)
}

type DuplicateComponentError struct {
	Component Component
}

func (e DuplicateComponentError) Error() string {
	return fmt.Sprintf("component appears more than once in query: %T", e.Component)
}

type QueryArityError struct {
	N int
}

func (e QueryArityError) Error() string {
	return fmt.Sprintf("query joins %d components, want 1 to %d", e.N, MaxQueryComponents)
}

// BorrowConflictError is the panic value raised when a component storage is borrowed
// in a way that overlaps an outstanding borrow. It is never returned.
type BorrowConflictError struct {
	Component string
	Exclusive bool
}

func (e BorrowConflictError) Error() string {
	if e.Exclusive {
		return fmt.Sprintf("component %s is already borrowed and cannot be borrowed exclusively", e.Component)
	}
	return fmt.Sprintf("component %s is borrowed exclusively and cannot be shared", e.Component)
}
