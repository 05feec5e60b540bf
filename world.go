package crate

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/table"
)

// World owns a set of entities and the storages of every registered component type.
// A World is not safe for concurrent use.
type World struct {
	entities entityTable
	registry *registry
	opQueue  opQueue
	cursors  int
}

func newWorld(schema table.Schema) *World {
	return &World{
		registry: newRegistry(schema),
		opQueue:  newOpQueue(),
	}
}

// Register creates an empty storage for each component. Registering a component
// twice fails with ComponentRegisteredError and keeps the existing storage.
func (w *World) Register(components ...Component) error {
	for _, c := range components {
		if err := w.registry.register(c); err != nil {
			return err
		}
		Config.logger.Debug("component registered",
			bark.KeyOperation, "register",
			bark.KeyComponent, fmt.Sprintf("%T", c),
			"registered", w.registry.len(),
		)
	}
	return nil
}

// AddEntity reuses the most recently released slot, or appends a new one.
func (w *World) AddEntity() Entity {
	return w.entities.allocate()
}

// NewEntity creates an entity carrying the given values. Nothing is created when a
// value's component is not registered.
func (w *World) NewEntity(values ...ComponentValue) (Entity, error) {
	for _, v := range values {
		if err := w.registry.require(v.Component()); err != nil {
			return Entity{}, err
		}
	}
	e := w.AddEntity()
	for _, v := range values {
		if err := v.insert(w, e); err != nil {
			w.RemoveEntity(e)
			return Entity{}, fmt.Errorf("failed to build entity: %w", err)
		}
	}
	return e, nil
}

// RemoveEntity drops every component of e and releases its slot. Removing a dead or
// unknown entity does nothing.
func (w *World) RemoveEntity(e Entity) {
	if !w.entities.alive(e) {
		return
	}
	w.registry.removeEverywhere(e.index)
	w.entities.release(e)
	Config.logger.Debug("entity removed", bark.KeyOperation, "remove", "entity", e.String())
}

// EnqueueRemoveEntity removes e now, or once the last open cursor closes.
func (w *World) EnqueueRemoveEntity(e Entity) {
	if !w.Locked() {
		w.RemoveEntity(e)
		return
	}
	w.opQueue.enqueueDestroy(e)
}

func (w *World) Alive(e Entity) bool {
	return w.entities.alive(e)
}

// Len counts the live entities.
func (w *World) Len() int {
	return w.entities.len()
}

// Locked reports whether any cursor is still open.
func (w *World) Locked() bool {
	return w.cursors > 0
}

// Query opens a cursor over the entities that have every one of the components.
func (w *World) Query(components ...Component) (*Cursor, error) {
	return newCursor(w, components)
}

// locate reports whether e's index was ever handed out, and a DeadEntityError when it
// was but e's generation is stale.
func (w *World) locate(e Entity) (bool, error) {
	if !w.entities.allocated(e.index) {
		return false, nil
	}
	if !w.entities.alive(e) {
		return true, DeadEntityError{Entity: e}
	}
	return true, nil
}

func (w *World) lock() {
	w.cursors++
}

func (w *World) unlock() {
	w.cursors--
	if w.cursors == 0 {
		w.processOperationQueue()
	}
}
