package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedWrapsAndKeepsLivingCells(t *testing.T) {
	b := NewBoard(5)
	Seed(b, Coord{-1, 5})
	assert.Equal(t, []Coord{{4, 0}}, b.LiveCells())

	Seed(b, Coord{4, 0})
	assert.Equal(t, Alive(0), b.CellAt(4, 0))
}

func TestRandomizeDensity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	b := NewBoard(6)
	Randomize(b, rng, 0)
	assert.Zero(t, b.CountLivingCells())

	Randomize(b, rng, 1)
	assert.Equal(t, 36, b.CountLivingCells())
}

func TestResetWithInterestingPatterns(t *testing.T) {
	b := NewBoard(30)
	b.Toggle(29, 29)

	ResetWithInterestingPatterns(b, rand.New(rand.NewSource(1)), 0)
	// two gliders and two blinkers
	assert.Equal(t, 16, b.CountLivingCells())
	assert.Equal(t, Dead(MaxAge), b.CellAt(29, 29))
}
