package model

// AliveNeighbors returns the tracked cells around c, in NeighborOffsets order.
// Between generations every tracked cell is alive, so this is exactly the live neighborhood.
func (g *SparseGrid) AliveNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(NeighborOffsets))
	for _, off := range NeighborOffsets {
		if n, ok := g.cells[c.Position.Add(off)]; ok {
			out = append(out, n)
		}
	}
	return out
}

// AllNeighbors returns all eight neighbors of c in NeighborOffsets order.
// Untracked positions are filled with dead ghost cells that are not inserted into the grid.
func (g *SparseGrid) AllNeighbors(c Cell) []Cell {
	var out [len(NeighborOffsets)]Cell
	for i, off := range NeighborOffsets {
		pos := c.Position.Add(off)
		if n, ok := g.cells[pos]; ok {
			out[i] = n
		} else {
			out[i] = newGhostCell(pos)
		}
	}
	return out[:]
}

// countAlive returns the number of alive cells in neighbors
func countAlive(neighbors []Cell) (count int) {
	for _, n := range neighbors {
		if n.Alive {
			count++
		}
	}
	return
}
