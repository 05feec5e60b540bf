package bench

import (
	"testing"

	"github.com/TheBitDrifter/crate"
)

// go test -bench=. ./bench -benchmem

const (
	nPos    = 9000
	nPosVel = 1000
)

type Position struct {
	X float64
	Y float64
}

type Velocity struct {
	X float64
	Y float64
}

func BenchmarkIterCrateGet(b *testing.B) {
	b.StopTimer()

	velocity := crate.FactoryNewComponent[Velocity]()
	position := crate.FactoryNewComponent[Position]()
	world := crate.Factory.NewWorld()
	world.Register(position, velocity)

	for i := 0; i < nPosVel; i++ {
		world.NewEntity(position.With(Position{}), velocity.With(Velocity{X: 1, Y: 1}))
	}
	for i := 0; i < nPos; i++ {
		world.NewEntity(position.With(Position{}))
	}

	b.StartTimer()

	for i := 0; i < b.N; i++ {
		cursor, _ := world.Query(velocity, position)
		for cursor.Next() {
			pos := position.GetFromCursor(cursor)
			vel := velocity.GetFromCursor(cursor)

			pos.X += vel.X
			pos.Y += vel.Y
		}
	}
}

func BenchmarkEntityChurnCrate(b *testing.B) {
	position := crate.FactoryNewComponent[Position]()
	world := crate.Factory.NewWorld()
	world.Register(position)

	entities := make([]crate.Entity, 0, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		entities = entities[:0]
		for j := 0; j < 1000; j++ {
			e, _ := world.NewEntity(position.With(Position{X: float64(j)}))
			entities = append(entities, e)
		}
		for _, e := range entities {
			world.RemoveEntity(e)
		}
	}
}
