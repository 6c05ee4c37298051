package model

import "math/rand"

// Seed brings every listed cell to life with age zero. Coordinates wrap.
func Seed(b *Board, cells ...Coord) {
	for _, c := range cells {
		row, col := Wrap(c.Row, b.size), Wrap(c.Col, b.size)
		if !b.cells[row][col].alive {
			b.Toggle(row, col)
		}
	}
}

// AddGlider adds a south-east travelling glider with its bounding box at (row, col)
func AddGlider(b *Board, row, col int) {
	Seed(b,
		Coord{row, col + 1},
		Coord{row + 1, col + 2},
		Coord{row + 2, col}, Coord{row + 2, col + 1}, Coord{row + 2, col + 2},
	)
}

// AddBlinker adds a horizontal period-2 oscillator starting at (row, col)
func AddBlinker(b *Board, row, col int) {
	Seed(b, Coord{row, col}, Coord{row, col + 1}, Coord{row, col + 2})
}

// AddBlock adds a 2×2 still life with its top-left corner at (row, col)
func AddBlock(b *Board, row, col int) {
	Seed(b, Coord{row, col}, Coord{row, col + 1}, Coord{row + 1, col}, Coord{row + 1, col + 1})
}

// Randomize brings cells to life with the given probability; living cells are left alone
func Randomize(b *Board, rng *rand.Rand, density float64) {
	for row := range b.size {
		for col := range b.size {
			if rng.Float64() < density {
				Seed(b, Coord{row, col})
			}
		}
	}
}

// ResetWithInterestingPatterns clears the board and adds gliders, oscillators and random life
func ResetWithInterestingPatterns(b *Board, rng *rand.Rand, density float64) {
	b.Clear()

	if b.size >= 10 {
		// Add some gliders
		AddGlider(b, 5, 5)
		if b.size >= 20 {
			AddGlider(b, 5, b.size-8)
		}

		// Add oscillators
		AddBlinker(b, b.size/2, b.size/4)
		if b.size >= 30 {
			AddBlinker(b, 3*b.size/4, 3*b.size/4)
		}
	}

	Randomize(b, rng, density)
}
