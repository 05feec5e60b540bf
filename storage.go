package crate

import (
	"fmt"
	"reflect"
)

// componentStorage is the type-blind view of a slots[T] used by the registry and cursors.
type componentStorage interface {
	contains(index int) bool
	nextOccupied(start int) (int, bool)
	discard(index int)
	typeName() string
}

var _ componentStorage = &slots[int]{}

type slot[T any] struct {
	value    T
	occupied bool
}

// slots holds zero or one T per entity index. Indices past the end are empty.
type slots[T any] struct {
	items []slot[T]
}

func newSlots[T any]() *slots[T] {
	return &slots[T]{}
}

func (s *slots[T]) contains(index int) bool {
	return index >= 0 && index < len(s.items) && s.items[index].occupied
}

func (s *slots[T]) insert(index int, value T) {
	if index >= len(s.items) {
		s.items = append(s.items, make([]slot[T], index+1-len(s.items))...)
	}
	s.items[index] = slot[T]{value: value, occupied: true}
}

func (s *slots[T]) remove(index int) (T, bool) {
	var zero T
	if !s.contains(index) {
		return zero, false
	}
	value := s.items[index].value
	s.items[index] = slot[T]{}
	return value, true
}

func (s *slots[T]) get(index int) *T {
	if !s.contains(index) {
		return nil
	}
	return &s.items[index].value
}

func (s *slots[T]) nextOccupied(start int) (int, bool) {
	for i := max(start, 0); i < len(s.items); i++ {
		if s.items[i].occupied {
			return i, true
		}
	}
	return 0, false
}

func (s *slots[T]) discard(index int) {
	s.remove(index)
}

func (s *slots[T]) typeName() string {
	return reflect.TypeFor[T]().String()
}

// storageOf recovers the concrete storage. The registry creates each storage from the
// same component it is keyed by, so a mismatch is a bug, not a usage error.
func storageOf[T any](s componentStorage) *slots[T] {
	typed, ok := s.(*slots[T])
	if !ok {
		panic(fmt.Sprintf("crate: storage holds %s, not %s", s.typeName(), reflect.TypeFor[T]()))
	}
	return typed
}
