package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitWindow(t *testing.T) {
	l := FitWindow(800, 600, 50)
	assert.Equal(t, WindowMargin, l.OriginX)
	assert.Equal(t, WindowMargin, l.OriginY)
	// (600 - 20 - 100) / 50
	assert.InDelta(t, 9.6, l.CellW, 1e-9)
	assert.Equal(t, l.CellW, l.CellH)

	w, h := l.Extent()
	assert.InDelta(t, 578, w, 1e-9)
	assert.Equal(t, w, h)
}

func TestLocate(t *testing.T) {
	l := FitWindow(800, 600, 50)
	tests := []struct {
		name     string
		x, y     float64
		row, col int
		ok       bool
	}{
		{"first cell", 10, 10, 0, 0, true},
		{"inside first cell", 15, 19, 0, 0, true},
		{"gap belongs to preceding cell", 20.5, 10, 0, 0, true},
		{"second column", 21.7, 10, 0, 1, true},
		{"last cell", 585, 585, 49, 49, true},
		{"left margin", 5, 100, 0, 0, false},
		{"top margin", 100, 9.9, 0, 0, false},
		{"past the board", 591, 100, 0, 0, false},
		{"far right of window", 790, 100, 0, 0, false},
		{"negative", -3, -3, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := l.Locate(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.row, row)
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestLocateRoundTripsCellRect(t *testing.T) {
	for _, l := range []Layout{FitWindow(640, 480, 20), Terminal(20)} {
		for row := range l.N {
			for col := range l.N {
				x, y, w, h := l.CellRect(row, col)
				gotRow, gotCol, ok := l.Locate(x+w/2, y+h/2)
				require.True(t, ok)
				require.Equal(t, row, gotRow)
				require.Equal(t, col, gotCol)
			}
		}
	}
}

func TestTerminalLocate(t *testing.T) {
	l := Terminal(5)

	row, col, ok := l.Locate(3, 4)
	require.True(t, ok)
	assert.Equal(t, 4, row)
	assert.Equal(t, 1, col)

	_, _, ok = l.Locate(10, 0)
	assert.False(t, ok)
	_, _, ok = l.Locate(0, 5)
	assert.False(t, ok)
}

func TestLocateDegenerateLayout(t *testing.T) {
	_, _, ok := Layout{}.Locate(0, 0)
	assert.False(t, ok)
}
