package model

import (
	"bytes"
	"log/slog"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-sparse-gol/rules"
)

func gridWith(cells ...Coordinate) *SparseGrid {
	g := NewSparseGrid()
	for _, c := range cells {
		g.MarkAlive(c.X, c.Y)
	}
	return g
}

func sorted(cells ...Coordinate) []Coordinate {
	out := slices.Clone(cells)
	slices.SortFunc(out, CompareCoordinates)
	return out
}

func assertLiveCells(t *testing.T, g *SparseGrid, want []Coordinate) {
	t.Helper()
	if got := g.LiveCells(); !slices.Equal(got, sorted(want...)) {
		t.Fatalf("live cells after generation %d = %v, want %v", g.Generation(), got, sorted(want...))
	}
}

func assertAllAlive(t *testing.T, g *SparseGrid) {
	t.Helper()
	for pos, c := range g.cells {
		if !c.Alive {
			t.Fatalf("dead cell retained at %v", pos)
		}
		if c.Position != pos {
			t.Fatalf("cell keyed at %v reports position %v", pos, c.Position)
		}
	}
}

// referenceStep computes the next generation by brute force over the bounding box
func referenceStep(live map[Coordinate]bool) map[Coordinate]bool {
	next := make(map[Coordinate]bool)
	if len(live) == 0 {
		return next
	}

	var b Bounds
	first := true
	for pos := range live {
		if first {
			b = Bounds{MinX: pos.X, MaxX: pos.X, MinY: pos.Y, MaxY: pos.Y}
			first = false
			continue
		}
		b.MinX, b.MaxX = min(b.MinX, pos.X), max(b.MaxX, pos.X)
		b.MinY, b.MaxY = min(b.MinY, pos.Y), max(b.MaxY, pos.Y)
	}

	for y := b.MinY - 1; y <= b.MaxY+1; y++ {
		for x := b.MinX - 1; x <= b.MaxX+1; x++ {
			pos := NewCoordinate(x, y)
			neighbors := 0
			for _, off := range NeighborOffsets {
				if live[pos.Add(off)] {
					neighbors++
				}
			}
			if rules.ApplyConwayRules(neighbors, live[pos]) {
				next[pos] = true
			}
		}
	}
	return next
}

func TestBlockIsStillLife(t *testing.T) {
	t.Parallel()
	g := NewSparseGrid()
	g.AddBlock(0, 0)
	want := g.LiveCells()

	for range 3 {
		g.EvaluateGeneration()
		assertLiveCells(t, g, want)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	t.Parallel()
	horizontal := []Coordinate{{0, 0}, {1, 0}, {2, 0}}
	vertical := []Coordinate{{1, -1}, {1, 0}, {1, 1}}
	g := gridWith(horizontal...)

	g.EvaluateGeneration()
	assertLiveCells(t, g, vertical)

	g.EvaluateGeneration()
	assertLiveCells(t, g, horizontal)

	if g.Generation() != 2 {
		t.Errorf("Generation() = %d, want 2", g.Generation())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	t.Parallel()
	g := gridWith(Coordinate{3, -7})
	g.EvaluateGeneration()

	if g.IsAlive(3, -7) {
		t.Error("isolated cell survived")
	}
	if g.Len() != 0 {
		t.Errorf("Len() = %d, want 0", g.Len())
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	t.Parallel()
	g := gridWith(Coordinate{0, 0}, Coordinate{1, 0}, Coordinate{-1, 0}, Coordinate{0, 1}, Coordinate{0, -1})

	p := g.plan()
	center, ok := p.decisions[NewCoordinate(0, 0)]
	if !ok {
		t.Fatal("no decision recorded for the center cell")
	}
	if center.PendingAlive {
		t.Error("center with 4 live neighbors was marked to survive")
	}
	if g.Len() != 5 {
		t.Fatalf("planning modified the grid: Len() = %d, want 5", g.Len())
	}

	g.EvaluateGeneration()
	if _, ok := g.CellAt(0, 0); ok {
		t.Error("overcrowded center is still tracked")
	}
	assertAllAlive(t, g)
}

func TestBirthExactness(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		cells     []Coordinate
		wantBirth bool
	}{
		{
			name:      "two neighbors",
			cells:     []Coordinate{{0, 0}, {2, 0}},
			wantBirth: false,
		},
		{
			name:      "three neighbors",
			cells:     []Coordinate{{0, 0}, {1, 0}, {2, 0}},
			wantBirth: true,
		},
		{
			name:      "four neighbors",
			cells:     []Coordinate{{0, 0}, {1, 0}, {2, 0}, {1, 2}},
			wantBirth: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gridWith(tt.cells...)
			g.EvaluateGeneration()
			if got := g.IsAlive(1, 1); got != tt.wantBirth {
				t.Errorf("(1,1) alive = %v, want %v", got, tt.wantBirth)
			}
		})
	}
}

func TestBirthsAreRecordedOnce(t *testing.T) {
	t.Parallel()
	g := gridWith(Coordinate{0, 0}, Coordinate{1, 0}, Coordinate{2, 0})

	p := g.plan()
	if len(p.births) != 2 {
		t.Fatalf("recorded %d births, want 2: %v", len(p.births), p.births)
	}
	for _, pos := range []Coordinate{{1, 1}, {1, -1}} {
		c, ok := p.births[pos]
		if !ok {
			t.Fatalf("missing birth at %v", pos)
		}
		if c.Alive || !c.PendingAlive {
			t.Errorf("birth at %v = %+v, want dead with PendingAlive", pos, c)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	t.Parallel()
	g := NewSparseGrid()
	g.AddGlider(0, 0)
	start := g.LiveCells()

	for range 4 {
		g.EvaluateGeneration()
	}

	want := make([]Coordinate, 0, len(start))
	for _, c := range start {
		want = append(want, c.Add(Offset{1, 1}))
	}
	assertLiveCells(t, g, want)
}

func TestSparsityInvariant(t *testing.T) {
	t.Parallel()
	g := NewSparseGrid()
	g.Randomize(rand.New(rand.NewSource(7)), SeedArea{Width: 16, Height: 16}, 0.4)

	for range 25 {
		g.EvaluateGeneration()
		assertAllAlive(t, g)
	}
}

func TestMatchesReferenceStep(t *testing.T) {
	t.Parallel()
	g := NewSparseGrid()
	g.Randomize(rand.New(rand.NewSource(42)), SeedArea{Origin: Coordinate{-10, -10}, Width: 20, Height: 20}, 0.35)

	live := make(map[Coordinate]bool)
	for _, c := range g.LiveCells() {
		live[c] = true
	}

	for gen := 1; gen <= 40; gen++ {
		g.EvaluateGeneration()
		live = referenceStep(live)

		if g.Len() != len(live) {
			t.Fatalf("generation %d: population %d, reference %d", gen, g.Len(), len(live))
		}
		for pos := range live {
			if !g.IsAlive(pos.X, pos.Y) {
				t.Fatalf("generation %d: %v alive in reference but not in grid", gen, pos)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	a, b := NewSparseGrid(), NewSparseGrid()
	a.AddRPentomino(0, 0)
	b.AddRPentomino(0, 0)

	for gen := 1; gen <= 60; gen++ {
		a.EvaluateGeneration()
		b.EvaluateGeneration()
		if !slices.Equal(a.LiveCells(), b.LiveCells()) {
			t.Fatalf("runs diverged at generation %d", gen)
		}
		if a.Hash() != b.Hash() {
			t.Fatalf("hashes diverged at generation %d", gen)
		}
	}
}

func TestEvaluateGenerationTrace(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := NewSparseGrid(WithLogger(logger))
	g.AddOscillator(0, 0)
	g.EvaluateGeneration()

	out := buf.String()
	for _, want := range []string{"generation evaluated", "generation=1", "population=3", "(1,-1) (1,0) (1,1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output %q does not contain %q", out, want)
		}
	}
}

func TestEvaluateGenerationSilentByDefault(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	g := NewSparseGrid(WithLogger(logger))
	g.AddOscillator(0, 0)
	g.EvaluateGeneration()

	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level: %q", buf.String())
	}
}
