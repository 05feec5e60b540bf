package crate

import (
	"errors"
	"fmt"

	"github.com/TheBitDrifter/bark"
)

type operation struct {
	typ    operationType
	entity Entity
	apply  func(*World) error
}

type operationType int

const (
	opNoop operationType = iota
	opDestroy
	opInsert
	opRemove
)

type opKey struct {
	entity Entity
	row    uint32
}

type opQueue struct {
	componentOps   []operation
	destroyOps     []operation
	pendingDestroy map[Entity]struct{}
	pendingMods    map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingDestroy: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

func (q *opQueue) len() int {
	return len(q.componentOps) + len(q.destroyOps)
}

func (w *World) processOperationQueue() {
	if w.opQueue.len() == 0 {
		return
	}
	Config.logger.Debug("processing queued operations",
		bark.KeyOperation, "flush",
		"component_ops", len(w.opQueue.componentOps),
		"destroy_ops", len(w.opQueue.destroyOps),
	)

	// Process component modifications
	for _, op := range w.opQueue.componentOps {
		if op.typ == opNoop {
			continue
		}
		if err := op.apply(w); err != nil {
			var dead DeadEntityError
			if errors.As(err, &dead) {
				Config.logger.Warn("dropped queued component operation", "entity", op.entity.String(), bark.KeyError, err)
				continue
			}
			panic(bark.AddTrace(fmt.Errorf("failed to apply queued component operation: %w", err)))
		}
	}

	// Process destroys last
	for _, op := range w.opQueue.destroyOps {
		w.RemoveEntity(op.entity)
	}

	// Clear all queues
	w.opQueue.componentOps = w.opQueue.componentOps[:0]
	w.opQueue.destroyOps = w.opQueue.destroyOps[:0]
	clear(w.opQueue.pendingDestroy)
	clear(w.opQueue.pendingMods)
}

func (q *opQueue) enqueueDestroy(e Entity) {
	if _, exists := q.pendingDestroy[e]; exists {
		return
	}
	q.pendingDestroy[e] = struct{}{}

	// Remove any pending component operations for this entity
	for key, idx := range q.pendingMods {
		if key.entity == e {
			q.componentOps[idx].typ = opNoop
			delete(q.pendingMods, key)
		}
	}

	q.destroyOps = append(q.destroyOps, operation{
		typ:    opDestroy,
		entity: e,
	})
}

func (q *opQueue) enqueueComponentOp(typ operationType, e Entity, row uint32, apply func(*World) error) {
	// If entity is pending destroy, ignore component operations
	if _, isDestroyed := q.pendingDestroy[e]; isDestroyed {
		return
	}

	key := opKey{entity: e, row: row}

	// The latest operation on the same entity and component wins
	if existingIdx, exists := q.pendingMods[key]; exists {
		existing := &q.componentOps[existingIdx]
		existing.typ = typ
		existing.apply = apply
		return
	}

	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		apply:  apply,
	})
}
