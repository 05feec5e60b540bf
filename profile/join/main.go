// Profiling:
// go build ./profile/join
// go tool pprof -http=":8000" -nodefraction=0.001 ./join mem.pprof

package main

import (
	"github.com/TheBitDrifter/crate"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 10000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	c1 := crate.FactoryNewComponent[comp1]()
	c2 := crate.FactoryNewComponent[comp2]()
	c3 := crate.FactoryNewComponent[comp3]()

	for range rounds {
		w := crate.Factory.NewWorld()
		if err := w.Register(c1, c2, c3); err != nil {
			panic(err)
		}
		for i := range numEntities {
			values := []crate.ComponentValue{c1.With(comp1{V: 1})}
			if i%2 == 0 {
				values = append(values, c2.With(comp2{V: 2, W: 1}))
			}
			if i%3 == 0 {
				values = append(values, c3.With(comp3{}))
			}
			if _, err := w.NewEntity(values...); err != nil {
				panic(err)
			}
		}

		for range iters {
			cursor, err := w.Query(c1, c2, c3)
			if err != nil {
				panic(err)
			}
			for cursor.Next() {
				a, b := c1.GetFromCursor(cursor), c2.GetFromCursor(cursor)
				a.V += b.V
				a.W += b.W
			}
		}
	}
}
