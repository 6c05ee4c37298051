package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next polarity of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Born reports whether a dead cell comes alive with the given neighbor count
func Born(neighbors int) bool {
	return ApplyConwayRules(neighbors, false)
}

// Survives reports whether a living cell stays alive with the given neighbor count
func Survives(neighbors int) bool {
	return ApplyConwayRules(neighbors, true)
}
