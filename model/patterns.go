package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Pattern names accepted by SeedPattern
const (
	PatternRPentomino = "rpentomino"
	PatternGlider     = "glider"
	PatternBlinker    = "blinker"
	PatternBlock      = "block"
	PatternRandom     = "random"
)

// ErrUnknownPattern is returned by SeedPattern for names it does not recognise
var ErrUnknownPattern = errors.New("unknown pattern")

// SeedArea is the rectangle random patterns are scattered over
type SeedArea struct {
	Origin        Coordinate
	Width, Height int64
}

// markRelative marks every offset in pattern alive, relative to (x, y)
func (g *SparseGrid) markRelative(x, y int64, pattern []Offset) {
	origin := NewCoordinate(x, y)
	for _, off := range pattern {
		pos := origin.Add(off)
		g.MarkAlive(pos.X, pos.Y)
	}
}

// AddRPentomino adds an R-pentomino, a methuselah that stabilises after 1103 generations
func (g *SparseGrid) AddRPentomino(x, y int64) {
	g.markRelative(x, y, []Offset{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {-1, 1}})
}

// AddGlider adds a glider pattern at the specified position
func (g *SparseGrid) AddGlider(x, y int64) {
	g.markRelative(x, y, []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
}

// AddOscillator adds a blinker oscillator pattern
func (g *SparseGrid) AddOscillator(x, y int64) {
	g.markRelative(x, y, []Offset{{0, 0}, {1, 0}, {2, 0}})
}

// AddBlock adds a 2x2 still life
func (g *SparseGrid) AddBlock(x, y int64) {
	g.markRelative(x, y, []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
}

// Randomize marks each position in area alive with probability density
func (g *SparseGrid) Randomize(rng *rand.Rand, area SeedArea, density float64) {
	for dy := range area.Height {
		for dx := range area.Width {
			if rng.Float64() < density {
				g.MarkAlive(area.Origin.X+dx, area.Origin.Y+dy)
			}
		}
	}
}

// InjectRandomLife adds count random cells inside area to break stagnation
func (g *SparseGrid) InjectRandomLife(rng *rand.Rand, area SeedArea, count int) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	for range count {
		g.MarkAlive(area.Origin.X+rng.Int63n(area.Width), area.Origin.Y+rng.Int63n(area.Height))
	}
}

// SeedPattern adds the named pattern. Fixed patterns are placed at area.Origin;
// PatternRandom fills area using density.
func (g *SparseGrid) SeedPattern(name string, rng *rand.Rand, area SeedArea, density float64) error {
	x, y := area.Origin.X, area.Origin.Y
	switch name {
	case PatternRPentomino:
		g.AddRPentomino(x, y)
	case PatternGlider:
		g.AddGlider(x, y)
	case PatternBlinker:
		g.AddOscillator(x, y)
	case PatternBlock:
		g.AddBlock(x, y)
	case PatternRandom:
		g.Randomize(rng, area, density)
	default:
		return errors.Wrapf(ErrUnknownPattern, "[SeedPattern] %q", name)
	}
	return nil
}

// KnownPattern reports whether SeedPattern accepts name
func KnownPattern(name string) bool {
	switch name {
	case PatternRPentomino, PatternGlider, PatternBlinker, PatternBlock, PatternRandom:
		return true
	}
	return false
}
