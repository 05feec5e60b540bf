package crate

import (
	"slices"
)

type query struct {
	components []Component
}

func newQuery() Query {
	return &query{}
}

// And appends components to the join, keeping their order.
func (q *query) And(components ...Component) Query {
	q.components = append(q.components, components...)
	return q
}

func (q *query) Components() []Component {
	return slices.Clone(q.components)
}

// Matches checks a single entity without opening a cursor. Dead and unknown entities
// never match.
func (q *query) Matches(w *World, e Entity) (bool, error) {
	if len(q.components) == 0 {
		return false, nil
	}
	guards := make([]*sharedGuard, 0, len(q.components))
	defer func() {
		for _, guard := range guards {
			guard.release()
		}
	}()
	for _, comp := range q.components {
		guard, err := w.registry.shared(comp)
		if err != nil {
			return false, err
		}
		guards = append(guards, guard)
	}
	if !w.entities.alive(e) {
		return false, nil
	}
	for _, guard := range guards {
		if !guard.storage().contains(e.index) {
			return false, nil
		}
	}
	return true, nil
}

func (q *query) Cursor(w *World) (*Cursor, error) {
	return newCursor(w, q.components)
}
