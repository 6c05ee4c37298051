package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b := New()
	require.Equal(t, DefaultSize, b.Size())
	for row := range b.Size() {
		for col := range b.Size() {
			require.Equal(t, Dead(MaxAge), b.CellAt(row, col))
		}
	}
	assert.Zero(t, b.CountLivingCells())
	assert.Empty(t, b.LiveCells())
}

func TestToggle(t *testing.T) {
	b := NewBoard(5)

	b.Toggle(1, 3)
	assert.Equal(t, Alive(0), b.CellAt(1, 3))
	assert.Equal(t, []Coord{{1, 3}}, b.LiveCells())

	b.Toggle(1, 3)
	assert.Equal(t, Dead(0), b.CellAt(1, 3))
	assert.Zero(t, b.CountLivingCells())
}

func TestToggleOutOfRangePanics(t *testing.T) {
	b := NewBoard(5)
	assert.Panics(t, func() { b.Toggle(5, 0) })
	assert.Panics(t, func() { b.CellAt(0, -1) })
}

func TestCountNeighborsWraps(t *testing.T) {
	b := NewBoard(5)
	Seed(b, Coord{4, 4}, Coord{4, 0}, Coord{0, 4}, Coord{1, 1})
	assert.Equal(t, 4, b.CountNeighbors(0, 0))
	assert.Equal(t, 2, b.CountNeighbors(4, 3))
}

func TestHashIgnoresAge(t *testing.T) {
	a := NewBoard(4)
	b := NewBoard(4)
	b.Toggle(0, 0)
	b.Toggle(0, 0)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(b))

	b.Toggle(2, 2)
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestClone(t *testing.T) {
	b := NewBoard(4)
	b.Toggle(1, 1)

	c := b.Clone()
	require.True(t, b.Equal(c))

	c.Toggle(2, 2)
	assert.False(t, b.Equal(c))
	assert.Equal(t, Dead(MaxAge), b.CellAt(2, 2))
}

func TestEqualSizeMismatch(t *testing.T) {
	assert.False(t, NewBoard(3).Equal(NewBoard(4)))
	assert.False(t, NewBoard(3).Equal(nil))
}
