package model

import (
	"crypto/md5"
	"fmt"
)

// DefaultSize is the board dimension used when none is configured
const DefaultSize = 50

// Board is a square toroidal grid holding one generation
type Board struct {
	size  int
	cells [][]Cell
}

// New creates a DefaultSize board with every cell dead and never alive
func New() *Board {
	return NewBoard(DefaultSize)
}

// NewBoard creates a size×size board with every cell dead and never alive
func NewBoard(size int) *Board {
	b := &Board{}
	b.Reset(size)
	return b
}

// Size returns the board dimension
func (b *Board) Size() int {
	return b.size
}

// Reset resizes the board if needed and kills every cell
func (b *Board) Reset(size int) {
	b.size = size

	// Resize cells if needed
	if len(b.cells) != size {
		b.cells = make([][]Cell, size)
	}
	for i := range b.cells {
		if len(b.cells[i]) != size {
			b.cells[i] = make([]Cell, size)
		}
	}
	b.Clear()
}

// Clear sets every cell to Dead(MaxAge)
func (b *Board) Clear() {
	for row := range b.size {
		for col := range b.size {
			b.cells[row][col] = Dead(MaxAge)
		}
	}
}

// Toggle flips the polarity of a cell and resets its age.
// Coordinates must lie in [0, Size()).
func (b *Board) Toggle(row, col int) {
	b.cells[row][col] = b.cells[row][col].Toggled()
}

// CellAt returns the cell at (row, col).
// Coordinates must lie in [0, Size()).
func (b *Board) CellAt(row, col int) Cell {
	return b.cells[row][col]
}

// CountNeighbors counts living cells among the eight wrapped neighbors of (row, col)
func (b *Board) CountNeighbors(row, col int) (count int) {
	for _, n := range Neighbors(row, col, b.size) {
		if b.cells[n.Row][n.Col].alive {
			count++
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for row := range b.size {
		for col := range b.size {
			if b.cells[row][col].alive {
				count++
			}
		}
	}
	return
}

// LiveCells returns the coordinates of every living cell in row-major order
func (b *Board) LiveCells() []Coord {
	var live []Coord
	for row := range b.size {
		for col := range b.size {
			if b.cells[row][col].alive {
				live = append(live, Coord{Row: row, Col: col})
			}
		}
	}
	return live
}

// Hash returns an MD5 hash of the board's polarity pattern; ages are ignored
func (b *Board) Hash() string {
	h := md5.New()
	for row := range b.size {
		for col := range b.size {
			if b.cells[row][col].alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both boards have the same size and identical cells, ages included
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for row := range b.size {
		for col := range b.size {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	c := &Board{size: b.size, cells: make([][]Cell, b.size)}
	for row := range b.cells {
		c.cells[row] = append([]Cell(nil), b.cells[row]...)
	}
	return c
}
