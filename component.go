package crate

import (
	"github.com/TheBitDrifter/table"
)

// Component identifies a component type. Every call to FactoryNewComponent with the
// same type parameter yields the same identity, which is what the registry keys on.
type Component interface {
	table.ElementType
	newStorage() componentStorage
}

// ComponentValue pairs a component type with a value, ready to be inserted on an entity.
type ComponentValue interface {
	Component() Component
	insert(w *World, e Entity) error
}
