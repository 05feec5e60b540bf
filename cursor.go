package crate

import (
	"iter"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ iCursor = &Cursor{}

func newCursor(w *World, components []Component) (*Cursor, error) {
	if len(components) == 0 || len(components) > MaxQueryComponents {
		return nil, QueryArityError{N: len(components)}
	}
	var seen mask.Mask
	ids := make([]table.ElementTypeID, len(components))
	for i, comp := range components {
		row := w.registry.rowFor(comp)
		var bit mask.Mask
		bit.Mark(row)
		if seen.ContainsAll(bit) {
			return nil, DuplicateComponentError{Component: comp}
		}
		seen.Mark(row)
		ids[i] = comp.ID()
	}
	if err := w.registry.requireAll(components, seen); err != nil {
		return nil, err
	}

	guards := make([]*exclusiveGuard, len(components))
	storages := make([]componentStorage, len(components))
	for i, comp := range components {
		guard, err := w.registry.exclusive(comp)
		if err != nil {
			for _, held := range guards[:i] {
				held.release()
			}
			return nil, err
		}
		guards[i] = guard
		storages[i] = guard.storage()
	}
	w.lock()
	Config.logger.Debug("cursor opened", bark.KeyOperation, "query", "components", len(components))

	return &Cursor{
		world:      w,
		components: components,
		ids:        ids,
		guards:     guards,
		storages:   storages,
		current:    -1,
	}, nil
}

// Next moves to the next entity, in ascending index order, that has every joined
// component. Once it returns false the cursor is closed and stays exhausted.
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	index, ok := c.advance()
	if !ok {
		c.Close()
		return false
	}
	c.current = index
	c.next = index + 1
	return true
}

// advance leapfrogs a candidate index across the storages in query order until every
// storage agrees on it. Whenever a storage's next occupied slot lies past the
// candidate, the candidate jumps there and the agreement count restarts.
func (c *Cursor) advance() (int, bool) {
	n := len(c.storages)
	candidate, agreed := c.next, 0
	for i := 0; ; i = (i + 1) % n {
		found, ok := c.storages[i].nextOccupied(candidate)
		if !ok {
			return 0, false
		}
		if found != candidate {
			candidate = found
			agreed = 0
		}
		agreed++
		if agreed == n {
			return candidate, true
		}
	}
}

// Entity returns the handle of the current match.
func (c *Cursor) Entity() Entity {
	c.mustBePositioned()
	return c.world.entities.entityAt(c.current)
}

// Index returns the entity index of the current match.
func (c *Cursor) Index() int {
	c.mustBePositioned()
	return c.current
}

// Entities yields each remaining match. Breaking out of the loop closes the cursor.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		defer c.Close()
		for c.Next() {
			if !yield(c.Entity()) {
				return
			}
		}
	}
}

// Rows yields the cursor itself at each remaining match, for loops that only need the
// components. Breaking out of the loop closes the cursor.
func (c *Cursor) Rows() iter.Seq[*Cursor] {
	return func(yield func(*Cursor) bool) {
		defer c.Close()
		for c.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Collect drains the remaining matches into a slice and closes the cursor.
func (c *Cursor) Collect() []Entity {
	return iter_util.Collect(c.Entities())
}

// Close releases the cursor's borrows. Closing twice is a no-op.
func (c *Cursor) Close() {
	if c.done {
		return
	}
	c.done = true
	for _, guard := range c.guards {
		guard.release()
	}
	c.guards = nil
	c.storages = nil
	Config.logger.Debug("cursor closed", bark.KeyOperation, "query", "components", len(c.components))
	c.world.unlock()
}

// storageFor finds the joined storage by element type ID, without consulting the schema.
func (c *Cursor) storageFor(id table.ElementTypeID) (componentStorage, bool) {
	c.mustBePositioned()
	for i, joined := range c.ids {
		if joined == id {
			return c.storages[i], true
		}
	}
	return nil, false
}

func (c *Cursor) mustBePositioned() {
	if c.done || c.current < 0 {
		panic("crate: cursor is not positioned on an entity")
	}
}
