package crate

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/table"
)

type factory struct{}

var Factory factory

// elementTypes memoizes one table.ElementType per Go type.
var elementTypes sync.Map

func (f factory) NewWorld() *World {
	return newWorld(table.Factory.NewSchema())
}

func (f factory) NewQuery() Query {
	return newQuery()
}

func (f factory) NewCursor(query Query, w *World) (*Cursor, error) {
	return query.Cursor(w)
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	key := reflect.TypeFor[T]()
	if iden, ok := elementTypes.Load(key); ok {
		return AccessibleComponent[T]{ElementType: iden.(table.ElementType)}
	}
	var fresh table.ElementType = table.FactoryNewElementType[T]()
	iden, _ := elementTypes.LoadOrStore(key, fresh)
	return AccessibleComponent[T]{ElementType: iden.(table.ElementType)}
}
