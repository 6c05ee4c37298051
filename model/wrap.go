package model

// Coord addresses a board cell by row and column
type Coord struct {
	Row, Col int
}

// neighborOffsets are the eight (dRow, dCol) pairs around a cell
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Wrap maps any index onto [0, n) so that -1 becomes n-1 and n becomes 0
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Neighbors returns the eight toroidally wrapped neighbors of (row, col) on an n×n board
func Neighbors(row, col, n int) (out [8]Coord) {
	for i, d := range neighborOffsets {
		out[i] = Coord{Row: Wrap(row+d[0], n), Col: Wrap(col+d[1], n)}
	}
	return
}
