package crate

import "fmt"

// Entity is a handle to an object in a World. Two handles are equal only when both
// their index and generation match.
type Entity struct {
	index      int
	generation uint32
}

func (e Entity) Index() int {
	return e.index
}

func (e Entity) Generation() uint32 {
	return e.generation
}

func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.index, e.generation)
}

// entityTable tracks one generation per slot index and a LIFO list of reclaimed slots.
// A slot's generation only ever increases. It is bumped when the slot is released, so a
// removed handle stops matching right away and the next handle issued for the slot
// carries the bumped generation.
type entityTable struct {
	generations []uint32
	free        []int
}

func (t *entityTable) allocate() Entity {
	if n := len(t.free); n > 0 {
		index := t.free[n-1]
		t.free = t.free[:n-1]
		return Entity{index: index, generation: t.generations[index]}
	}
	index := len(t.generations)
	t.generations = append(t.generations, 0)
	return Entity{index: index}
}

func (t *entityTable) allocated(index int) bool {
	return index >= 0 && index < len(t.generations)
}

func (t *entityTable) alive(e Entity) bool {
	return t.allocated(e.index) && t.generations[e.index] == e.generation
}

// release reclaims e's slot. Reports false when e was not alive.
func (t *entityTable) release(e Entity) bool {
	if !t.alive(e) {
		return false
	}
	t.generations[e.index]++
	t.free = append(t.free, e.index)
	return true
}

func (t *entityTable) entityAt(index int) Entity {
	return Entity{index: index, generation: t.generations[index]}
}

func (t *entityTable) len() int {
	return len(t.generations) - len(t.free)
}
