package model

// Cell is the life status of a single grid position.
//
// PendingAlive carries the next-generation status while a generation is being
// evaluated; it is applied to Alive when the generation is committed. Cells
// stored in a SparseGrid are always settled, with both flags true.
type Cell struct {
	Alive        bool
	PendingAlive bool
	Position     Coordinate
}

// newLiveCell returns a settled live cell at pos
func newLiveCell(pos Coordinate) Cell {
	return Cell{Alive: true, PendingAlive: true, Position: pos}
}

// newGhostCell returns a dead placeholder at pos. Ghosts are never stored.
func newGhostCell(pos Coordinate) Cell {
	return Cell{Position: pos}
}

// Equal reports whether c and other refer to the same position.
// Status flags are not part of a cell's identity.
func (c Cell) Equal(other Cell) bool {
	return c.Position == other.Position
}
