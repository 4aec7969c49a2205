package model

import (
	"cmp"
	"fmt"
)

// Coordinate is a position on the unbounded grid.
//
// Components are 64-bit signed integers. Coordinates beyond ±2^63 wrap around;
// callers must keep patterns well inside that range.
type Coordinate struct {
	X int64
	Y int64
}

// Offset is a step from one coordinate to another
type Offset struct {
	DX int64
	DY int64
}

// NeighborOffsets lists the eight neighbor steps in the fixed order used for
// every neighborhood scan. Do not modify.
var NeighborOffsets = [8]Offset{
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

// NewCoordinate returns the coordinate (x, y)
func NewCoordinate(x, y int64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Add returns the componentwise sum of c and o
func (c Coordinate) Add(o Offset) Coordinate {
	return Coordinate{X: c.X + o.DX, Y: c.Y + o.DY}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CompareCoordinates orders coordinates by X, then by Y
func CompareCoordinates(a, b Coordinate) int {
	if n := cmp.Compare(a.X, b.X); n != 0 {
		return n
	}
	return cmp.Compare(a.Y, b.Y)
}
