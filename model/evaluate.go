package model

import (
	"context"
	"log/slog"
	"slices"

	"github.com/sheikhrachel/go-sparse-gol/rules"
)

// generationPlan holds every next-state decision for one generation.
// It is computed against the grid without modifying it.
type generationPlan struct {
	decisions map[Coordinate]Cell // tracked cells with PendingAlive set
	births    map[Coordinate]Cell // ghosts that qualified for birth
}

// snapshot copies the tracked cells, sorted by position
func (g *SparseGrid) snapshot() []Cell {
	out := make([]Cell, 0, len(g.cells))
	for _, c := range g.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Cell) int {
		return CompareCoordinates(a.Position, b.Position)
	})
	return out
}

// plan computes the next state of every tracked cell and every ghost neighbor
// eligible for birth. The grid is only read.
func (g *SparseGrid) plan() generationPlan {
	var (
		cells = g.snapshot()
		p     = generationPlan{
			decisions: make(map[Coordinate]Cell, len(cells)),
			births:    make(map[Coordinate]Cell),
		}
	)

	for _, c := range cells {
		neighbors := g.AllNeighbors(c)

		for _, n := range neighbors {
			if n.Alive {
				continue
			}
			if _, seen := p.births[n.Position]; seen {
				continue
			}
			if rules.IsBorn(len(g.AliveNeighbors(n))) {
				p.births[n.Position] = Cell{PendingAlive: true, Position: n.Position}
			}
		}

		c.PendingAlive = rules.Survives(countAlive(neighbors))
		p.decisions[c.Position] = c
	}

	return p
}

// commit applies p, replacing the tracked set in a single step
func (g *SparseGrid) commit(p generationPlan) {
	next := make(map[Coordinate]Cell, len(p.decisions)+len(p.births))

	for pos, c := range p.births {
		if c.PendingAlive {
			next[pos] = c
		}
	}
	for pos, c := range p.decisions {
		next[pos] = c
	}

	for pos, c := range next {
		c.Alive = c.PendingAlive
		if !c.Alive {
			delete(next, pos)
			continue
		}
		next[pos] = c
	}

	g.cells = next
	g.generation++
}

// EvaluateGeneration advances the grid by exactly one generation.
//
// All neighbor counts are taken against the previous generation; births and
// deaths only become visible once the whole generation has been decided.
func (g *SparseGrid) EvaluateGeneration() {
	g.commit(g.plan())

	if g.logger.Enabled(context.Background(), slog.LevelDebug) {
		g.logger.Debug("generation evaluated",
			slog.Int("generation", g.generation),
			slog.Int("population", len(g.cells)),
			slog.Any("cells", g.LiveCells()),
		)
	}
}
