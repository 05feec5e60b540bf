package crate

import (
	"testing"

	"github.com/TheBitDrifter/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test component types
type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func TestSlotsInsertExtendsWithEmptySlots(t *testing.T) {
	s := newSlots[int]()
	s.insert(4, 40)

	assert.Len(t, s.items, 5)
	for i := 0; i < 4; i++ {
		assert.False(t, s.contains(i), "slot %d should be empty", i)
	}
	assert.True(t, s.contains(4))
	assert.Equal(t, 40, *s.get(4))

	s.insert(1, 10)
	assert.Len(t, s.items, 5, "inserting inside the range must not grow it")
	assert.Equal(t, 10, *s.get(1))
}

func TestSlotsInsertOverwrites(t *testing.T) {
	s := newSlots[string]()
	s.insert(2, "first")
	s.insert(2, "second")

	assert.Equal(t, "second", *s.get(2))
	assert.Len(t, s.items, 3)
}

func TestSlotsRemove(t *testing.T) {
	tests := []struct {
		name      string
		setup     map[int]int
		index     int
		wantValue int
		wantOK    bool
	}{
		{"Present", map[int]int{0: 7, 3: 9}, 3, 9, true},
		{"Empty slot", map[int]int{3: 9}, 1, 0, false},
		{"Out of range", map[int]int{3: 9}, 10, 0, false},
		{"Negative", map[int]int{3: 9}, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlots[int]()
			for index, value := range tt.setup {
				s.insert(index, value)
			}

			value, ok := s.remove(tt.index)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
			assert.False(t, s.contains(tt.index))
			assert.Nil(t, s.get(tt.index))
		})
	}
}

func TestSlotsNextOccupied(t *testing.T) {
	s := newSlots[int]()
	for _, index := range []int{2, 3, 7} {
		s.insert(index, index)
	}
	s.remove(3)

	tests := []struct {
		start  int
		want   int
		wantOK bool
	}{
		{0, 2, true},
		{2, 2, true},
		{3, 7, true},
		{7, 7, true},
		{8, 0, false},
		{100, 0, false},
		{-5, 2, true},
	}
	for _, tt := range tests {
		got, ok := s.nextOccupied(tt.start)
		assert.Equal(t, tt.wantOK, ok, "start %d", tt.start)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "start %d", tt.start)
		}
	}
}

func TestSlotsGetIsReference(t *testing.T) {
	s := newSlots[Position]()
	s.insert(0, Position{X: 1})

	s.get(0).X = 5
	assert.Equal(t, 5.0, s.get(0).X)
}

func TestStorageOfMismatchPanics(t *testing.T) {
	var erased componentStorage = newSlots[Position]()

	assert.NotPanics(t, func() { storageOf[Position](erased) })
	assert.PanicsWithValue(t, "crate: storage holds crate.Position, not crate.Velocity", func() {
		storageOf[Velocity](erased)
	})
}

func TestCellBorrowRules(t *testing.T) {
	tests := []struct {
		name      string
		hold      func(c *cell)
		exclusive bool
		wantPanic bool
	}{
		{"Shared after shared", func(c *cell) { c.borrowShared() }, false, false},
		{"Exclusive when free", func(c *cell) {}, true, false},
		{"Exclusive after shared", func(c *cell) { c.borrowShared() }, true, true},
		{"Shared after exclusive", func(c *cell) { c.borrowExclusive() }, false, true},
		{"Exclusive after exclusive", func(c *cell) { c.borrowExclusive() }, true, true},
		{"Exclusive after released exclusive", func(c *cell) { c.borrowExclusive().release() }, true, false},
		{"Exclusive after released shared", func(c *cell) { c.borrowShared().release() }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCell(newSlots[int]())
			tt.hold(c)

			borrow := func() {
				if tt.exclusive {
					c.borrowExclusive()
				} else {
					c.borrowShared()
				}
			}
			if tt.wantPanic {
				assert.PanicsWithValue(t, BorrowConflictError{Component: "int", Exclusive: tt.exclusive}, borrow)
			} else {
				assert.NotPanics(t, borrow)
			}
		})
	}
}

func TestCellReleaseIsIdempotent(t *testing.T) {
	c := newCell(newSlots[int]())
	first := c.borrowShared()
	second := c.borrowShared()

	first.release()
	first.release()
	assert.Equal(t, 1, c.readers)

	second.release()
	assert.Equal(t, 0, c.readers)

	guard := c.borrowExclusive()
	guard.release()
	guard.release()
	assert.False(t, c.writer)
	assert.Panics(t, func() { guard.storage() })
}

func TestRegistry(t *testing.T) {
	posComp := FactoryNewComponent[Position]()
	velComp := FactoryNewComponent[Velocity]()

	r := newRegistry(table.Factory.NewSchema())
	require.NoError(t, r.register(posComp))

	err := r.register(posComp)
	var registered ComponentRegisteredError
	assert.ErrorAs(t, err, &registered)
	assert.Equal(t, 1, r.len())

	var unregistered UnregisteredComponentError
	_, err = r.shared(velComp)
	assert.ErrorAs(t, err, &unregistered)
	_, err = r.exclusive(velComp)
	assert.ErrorAs(t, err, &unregistered)

	guard, err := r.exclusive(posComp)
	require.NoError(t, err)
	storageOf[Position](guard.storage()).insert(3, Position{X: 1})
	guard.release()

	require.NoError(t, r.register(velComp))
	r.removeEverywhere(3)

	shared, err := r.shared(posComp)
	require.NoError(t, err)
	defer shared.release()
	assert.False(t, shared.storage().contains(3))
}

func TestComponentIdentityIsPerType(t *testing.T) {
	first := FactoryNewComponent[Health]()
	second := FactoryNewComponent[Health]()

	r := newRegistry(table.Factory.NewSchema())
	assert.Equal(t, r.rowFor(first), r.rowFor(second))
	assert.NotEqual(t, r.rowFor(first), r.rowFor(FactoryNewComponent[Position]()))
}
