package crate

import (
	"fmt"
	"reflect"
)

var _ Component = AccessibleComponent[int]{}

func (c AccessibleComponent[T]) newStorage() componentStorage {
	return newSlots[T]()
}

// Get returns a shared reference to e's value. The reference keeps the storage
// borrowed until released. The result is nil, without error, when e's index was
// never allocated or e has no such component.
func (c AccessibleComponent[T]) Get(w *World, e Entity) (*Ref[T], error) {
	allocated, err := w.locate(e)
	if err != nil {
		return nil, err
	}
	if !allocated {
		return nil, w.registry.require(c)
	}
	guard, err := w.registry.shared(c)
	if err != nil {
		return nil, err
	}
	value := storageOf[T](guard.storage()).get(e.index)
	if value == nil {
		guard.release()
		return nil, nil
	}
	return &Ref[T]{value: value, guard: guard}, nil
}

// Load copies e's value out, reporting whether it was present.
func (c AccessibleComponent[T]) Load(w *World, e Entity) (T, bool, error) {
	var zero T
	ref, err := c.Get(w, e)
	if err != nil || ref == nil {
		return zero, false, err
	}
	defer ref.Release()
	return *ref.Value(), true, nil
}

// Has reports whether e currently has the component.
func (c AccessibleComponent[T]) Has(w *World, e Entity) (bool, error) {
	allocated, err := w.locate(e)
	if err != nil {
		return false, err
	}
	if !allocated {
		return false, w.registry.require(c)
	}
	guard, err := w.registry.shared(c)
	if err != nil {
		return false, err
	}
	defer guard.release()
	return guard.storage().contains(e.index), nil
}

// Insert stores value on e, replacing any existing value.
func (c AccessibleComponent[T]) Insert(w *World, e Entity, value T) error {
	allocated, err := w.locate(e)
	if err != nil {
		return err
	}
	if !allocated {
		return UnknownEntityError{Entity: e}
	}
	guard, err := w.registry.exclusive(c)
	if err != nil {
		return err
	}
	defer guard.release()
	storageOf[T](guard.storage()).insert(e.index, value)
	return nil
}

// Remove detaches e's value and returns it, reporting whether there was one.
func (c AccessibleComponent[T]) Remove(w *World, e Entity) (T, bool, error) {
	var zero T
	allocated, err := w.locate(e)
	if err != nil {
		return zero, false, err
	}
	if !allocated {
		return zero, false, w.registry.require(c)
	}
	guard, err := w.registry.exclusive(c)
	if err != nil {
		return zero, false, err
	}
	defer guard.release()
	value, ok := storageOf[T](guard.storage()).remove(e.index)
	return value, ok, nil
}

// EnqueueInsert inserts now, or once the last open cursor closes.
func (c AccessibleComponent[T]) EnqueueInsert(w *World, e Entity, value T) error {
	if !w.Locked() {
		return c.Insert(w, e, value)
	}
	if err := c.checkQueueable(w, e); err != nil {
		return err
	}
	w.opQueue.enqueueComponentOp(opInsert, e, w.registry.rowFor(c), func(w *World) error {
		return c.Insert(w, e, value)
	})
	return nil
}

// EnqueueRemove removes now, or once the last open cursor closes.
func (c AccessibleComponent[T]) EnqueueRemove(w *World, e Entity) error {
	if !w.Locked() {
		_, _, err := c.Remove(w, e)
		return err
	}
	if err := c.checkQueueable(w, e); err != nil {
		return err
	}
	w.opQueue.enqueueComponentOp(opRemove, e, w.registry.rowFor(c), func(w *World) error {
		_, _, err := c.Remove(w, e)
		return err
	})
	return nil
}

func (c AccessibleComponent[T]) checkQueueable(w *World, e Entity) error {
	allocated, err := w.locate(e)
	if err != nil {
		return err
	}
	if !allocated {
		return UnknownEntityError{Entity: e}
	}
	return w.registry.require(c)
}

// GetFromCursor returns the exclusive reference to this component for the cursor's
// current entity. It panics if the component is not one the cursor joins.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	storage, ok := cursor.storageFor(c.ID())
	if !ok {
		panic(fmt.Sprintf("crate: %s is not joined by this cursor", reflect.TypeFor[T]()))
	}
	return storageOf[T](storage).get(cursor.current)
}

// With pairs the component with a value for World.NewEntity.
func (c AccessibleComponent[T]) With(value T) ComponentValue {
	return componentValue[T]{component: c, value: value}
}

type componentValue[T any] struct {
	component AccessibleComponent[T]
	value     T
}

func (v componentValue[T]) Component() Component {
	return v.component
}

func (v componentValue[T]) insert(w *World, e Entity) error {
	return v.component.Insert(w, e, v.value)
}

// Value returns the referenced component.
func (r *Ref[T]) Value() *T {
	if r.guard.released {
		panic("crate: use of released reference")
	}
	return r.value
}

// Release ends the shared borrow. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	r.guard.release()
}
