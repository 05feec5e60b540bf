package crate_test

import (
	"fmt"

	"github.com/TheBitDrifter/crate"
)

// Position is a simple component for 2D coordinates
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement
type Velocity struct {
	X float64
	Y float64
}

// Name is a simple component for entity identification
type Name struct {
	Value string
}

// Example shows basic crate usage with entity creation and queries
func Example_basic() {
	world := crate.Factory.NewWorld()

	// Define and register components
	position := crate.FactoryNewComponent[Position]()
	velocity := crate.FactoryNewComponent[Velocity]()
	name := crate.FactoryNewComponent[Name]()
	world.Register(position, velocity, name)

	// Create entities
	for i := 0; i < 3; i++ {
		world.NewEntity(position.With(Position{}))
	}
	world.NewEntity(position.With(Position{}), velocity.With(Velocity{X: 2, Y: 1}))
	player, _ := world.NewEntity(
		position.With(Position{X: 10, Y: 20}),
		velocity.With(Velocity{X: 1, Y: 2}),
		name.With(Name{Value: "Player"}),
	)

	// Move everything that has a velocity
	cursor, _ := world.Query(position, velocity)
	for range cursor.Rows() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

	// Report the named entities
	cursor, _ = world.Query(name, position)
	for e := range cursor.Entities() {
		pos := position.GetFromCursor(cursor)
		fmt.Printf("%s (%v) at (%.1f, %.1f)\n", name.GetFromCursor(cursor).Value, e, pos.X, pos.Y)
	}

	pos, _, _ := position.Load(world, player)
	fmt.Printf("Player X after the update: %.1f\n", pos.X)

	// Output:
	// Player (4:0) at (11.0, 22.0)
	// Player X after the update: 11.0
}

// Example_removal shows that removed handles go stale while their slot is reused
func Example_removal() {
	world := crate.Factory.NewWorld()
	position := crate.FactoryNewComponent[Position]()
	world.Register(position)

	first, _ := world.NewEntity(position.With(Position{X: 1}))
	world.RemoveEntity(first)
	second := world.AddEntity()

	_, err := position.Get(world, first)
	fmt.Println(first, second, first == second)
	fmt.Println(err)

	// Output:
	// 0:0 0:1 false
	// entity '0:0' is no longer alive
}

// Example_deferred shows how to remove entities while iterating
func Example_deferred() {
	world := crate.Factory.NewWorld()
	position := crate.FactoryNewComponent[Position]()
	world.Register(position)

	for i := 0; i < 5; i++ {
		world.NewEntity(position.With(Position{X: float64(i)}))
	}

	cursor, _ := world.Query(position)
	for e := range cursor.Entities() {
		if position.GetFromCursor(cursor).X >= 3 {
			world.EnqueueRemoveEntity(e)
		}
	}
	fmt.Printf("%d entities left\n", world.Len())

	// Output:
	// 3 entities left
}
