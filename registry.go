package crate

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// registry maps component types to their guarded storages. Types are resolved to
// schema rows; the key set only ever grows.
type registry struct {
	schema     table.Schema
	registered mask.Mask
	cells      map[uint32]*cell
	order      []*cell
}

func newRegistry(schema table.Schema) *registry {
	return &registry{
		schema: schema,
		cells:  make(map[uint32]*cell),
	}
}

func (r *registry) rowFor(c Component) uint32 {
	r.schema.Register(c)
	return r.schema.RowIndexFor(c)
}

func (r *registry) register(c Component) error {
	row := r.rowFor(c)
	if _, found := r.cells[row]; found {
		return ComponentRegisteredError{Component: c}
	}
	created := newCell(c.newStorage())
	r.cells[row] = created
	r.order = append(r.order, created)
	r.registered.Mark(row)
	return nil
}

func (r *registry) lookup(c Component) (*cell, error) {
	found, ok := r.cells[r.rowFor(c)]
	if !ok {
		return nil, UnregisteredComponentError{Component: c}
	}
	return found, nil
}

func (r *registry) require(c Component) error {
	_, err := r.lookup(c)
	return err
}

// requireAll checks a set of components whose rows are already marked in rows.
func (r *registry) requireAll(components []Component, rows mask.Mask) error {
	if r.registered.ContainsAll(rows) {
		return nil
	}
	for _, c := range components {
		if err := r.require(c); err != nil {
			return err
		}
	}
	return nil
}

func (r *registry) shared(c Component) (*sharedGuard, error) {
	found, err := r.lookup(c)
	if err != nil {
		return nil, err
	}
	return found.borrowShared(), nil
}

func (r *registry) exclusive(c Component) (*exclusiveGuard, error) {
	found, err := r.lookup(c)
	if err != nil {
		return nil, err
	}
	return found.borrowExclusive(), nil
}

// removeEverywhere discards whatever each registered storage holds at index. Every
// storage is borrowed before any is touched, so a conflict leaves nothing half removed.
func (r *registry) removeEverywhere(index int) {
	guards := make([]*exclusiveGuard, len(r.order))
	for i, c := range r.order {
		guards[i] = c.borrowExclusive()
	}
	for _, guard := range guards {
		guard.storage().discard(index)
		guard.release()
	}
}

func (r *registry) len() int {
	return len(r.order)
}
