package rules

const (
	// birthNeighbors is the exact live neighbor count that brings a dead cell to life
	birthNeighbors = 3

	minSurvivalNeighbors = 2
	maxSurvivalNeighbors = 3
)

// Survives reports whether a live cell with the given live neighbor count stays alive
func Survives(neighbors int) bool {
	return neighbors >= minSurvivalNeighbors && neighbors <= maxSurvivalNeighbors
}

// IsBorn reports whether a dead cell with the given live neighbor count comes to life
func IsBorn(neighbors int) bool {
	return neighbors == birthNeighbors
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return IsBorn(neighbors)
}
