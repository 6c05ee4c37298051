package model

import (
	"fmt"
	"math"

	"github.com/Matthew1231A/conways-game-of-life/rules"
)

// MaxAge is the saturation point of a cell's age counter
const MaxAge = math.MaxUint8

// Cell is a single board position: either alive or dead, each carrying
// the number of generations it has spent in that state.
type Cell struct {
	alive bool
	age   uint8
}

// Alive returns a living cell of the given age
func Alive(age uint8) Cell {
	return Cell{alive: true, age: age}
}

// Dead returns a dead cell of the given age
func Dead(age uint8) Cell {
	return Cell{age: age}
}

// IsAlive reports the polarity of the cell
func (c Cell) IsAlive() bool {
	return c.alive
}

// Age returns how many generations the cell has held its current polarity.
// A dead cell at MaxAge has never been alive, or not for a long time.
func (c Cell) Age() uint8 {
	return c.age
}

// Toggled flips the polarity and resets the age
func (c Cell) Toggled() Cell {
	return Cell{alive: !c.alive}
}

// Next returns the cell's state in the following generation given its live neighbor count
func (c Cell) Next(neighbors int) Cell {
	switch {
	case c.alive && rules.Survives(neighbors):
		return Alive(older(c.age))
	case c.alive:
		return Dead(0)
	case rules.Born(neighbors):
		return Alive(0)
	default:
		return Dead(older(c.age))
	}
}

func (c Cell) String() string {
	if c.alive {
		return fmt.Sprintf("Alive(%d)", c.age)
	}
	return fmt.Sprintf("Dead(%d)", c.age)
}

func older(age uint8) uint8 {
	if age == MaxAge {
		return age
	}
	return age + 1
}
