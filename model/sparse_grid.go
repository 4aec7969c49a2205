package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// SparseGrid represents the unbounded board, tracking only live cells
type SparseGrid struct {
	cells      map[Coordinate]Cell
	generation int
	logger     *slog.Logger
}

// Option configures a SparseGrid
type Option func(*SparseGrid)

// WithLogger sets the sink for per-generation trace output.
// Traces are emitted at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(g *SparseGrid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewSparseGrid creates an empty grid
func NewSparseGrid(opts ...Option) *SparseGrid {
	g := &SparseGrid{
		cells:  make(map[Coordinate]Cell),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// MarkAlive seeds a live cell at (x, y). Seeding an already tracked position is a no-op.
func (g *SparseGrid) MarkAlive(x, y int64) {
	pos := NewCoordinate(x, y)
	if _, ok := g.cells[pos]; ok {
		return
	}
	g.cells[pos] = newLiveCell(pos)
}

// Len returns the number of tracked cells
func (g *SparseGrid) Len() int {
	return len(g.cells)
}

// Generation returns the number of generations evaluated so far
func (g *SparseGrid) Generation() int {
	return g.generation
}

// IsAlive reports whether (x, y) holds a live cell
func (g *SparseGrid) IsAlive(x, y int64) bool {
	_, ok := g.cells[NewCoordinate(x, y)]
	return ok
}

// CellAt returns a copy of the tracked cell at (x, y)
func (g *SparseGrid) CellAt(x, y int64) (Cell, bool) {
	c, ok := g.cells[NewCoordinate(x, y)]
	return c, ok
}

// LiveCells returns the positions of all live cells, sorted by X then Y
func (g *SparseGrid) LiveCells() []Coordinate {
	out := make([]Coordinate, 0, len(g.cells))
	for pos := range g.cells {
		out = append(out, pos)
	}
	slices.SortFunc(out, CompareCoordinates)
	return out
}

// Column returns the sorted y-coordinates of live cells at column x within [y1, y2)
func (g *SparseGrid) Column(x, y1, y2 int64) []int64 {
	if y2 <= y1 {
		return nil
	}

	var out []int64
	for pos := range g.cells {
		if pos.X == x && pos.Y >= y1 && pos.Y < y2 {
			out = append(out, pos.Y)
		}
	}
	slices.Sort(out)
	return out
}

// Clear removes every cell. The generation counter keeps running.
func (g *SparseGrid) Clear() {
	clear(g.cells)
}

// Bounds is the inclusive bounding box of the live cells
type Bounds struct {
	MinX, MaxX, MinY, MaxY int64
}

// Bounds calculates the bounding box of living cells.
// ok is false when the grid is empty.
func (g *SparseGrid) Bounds() (b Bounds, ok bool) {
	for pos := range g.cells {
		if !ok {
			b = Bounds{MinX: pos.X, MaxX: pos.X, MinY: pos.Y, MaxY: pos.Y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, pos.X)
		b.MaxX = max(b.MaxX, pos.X)
		b.MinY = min(b.MinY, pos.Y)
		b.MaxY = max(b.MaxY, pos.Y)
	}
	return b, ok
}

// BoundingBoxSize returns the area of the active region
func (g *SparseGrid) BoundingBoxSize() int64 {
	b, ok := g.Bounds()
	if !ok {
		return 0
	}
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// Hash returns an MD5 digest of the live cell set. Equal sets hash equally regardless of history.
func (g *SparseGrid) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, pos := range g.LiveCells() {
		binary.BigEndian.PutUint64(buf[:8], uint64(pos.X))
		binary.BigEndian.PutUint64(buf[8:], uint64(pos.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
