package crate

// cell guards one component storage: any number of shared borrows or a single
// exclusive borrow, never both.
type cell struct {
	storage componentStorage
	readers int
	writer  bool
}

type sharedGuard struct {
	cell     *cell
	released bool
}

type exclusiveGuard struct {
	cell     *cell
	released bool
}

func newCell(storage componentStorage) *cell {
	return &cell{storage: storage}
}

func (c *cell) borrowShared() *sharedGuard {
	if c.writer {
		panic(BorrowConflictError{Component: c.storage.typeName()})
	}
	c.readers++
	return &sharedGuard{cell: c}
}

func (c *cell) borrowExclusive() *exclusiveGuard {
	if c.writer || c.readers > 0 {
		panic(BorrowConflictError{Component: c.storage.typeName(), Exclusive: true})
	}
	c.writer = true
	return &exclusiveGuard{cell: c}
}

func (g *sharedGuard) storage() componentStorage {
	if g.released {
		panic("crate: use of released shared borrow")
	}
	return g.cell.storage
}

func (g *sharedGuard) release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.readers--
}

func (g *exclusiveGuard) storage() componentStorage {
	if g.released {
		panic("crate: use of released exclusive borrow")
	}
	return g.cell.storage
}

func (g *exclusiveGuard) release() {
	if g.released {
		return
	}
	g.released = true
	g.cell.writer = false
}
