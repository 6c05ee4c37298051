// Package layout maps between screen coordinates and board cells and picks
// the colour each cell is drawn with.
package layout

import "math"

const (
	// WindowMargin surrounds the board inside a pixel window
	WindowMargin = 10.
	// CellMargin separates neighbouring cells inside a pixel window
	CellMargin = 2.
)

// Layout places an N×N board on a screen. Cell (row, col) occupies
// [OriginX + col*(CellW+Gap), +CellW) horizontally and the matching band vertically.
type Layout struct {
	OriginX, OriginY float64
	CellW, CellH     float64
	Gap              float64
	N                int
}

// FitWindow lays out square cells inside a width×height pixel window
func FitWindow(width, height float64, n int) Layout {
	side := math.Min(width, height) - WindowMargin*2
	cell := (side - CellMargin*float64(n)) / float64(n)
	return Layout{
		OriginX: WindowMargin,
		OriginY: WindowMargin,
		CellW:   cell,
		CellH:   cell,
		Gap:     CellMargin,
		N:       n,
	}
}

// Terminal lays out cells two character columns wide and one row high,
// which looks roughly square in most terminal fonts.
func Terminal(n int) Layout {
	return Layout{CellW: 2, CellH: 1, N: n}
}

// Locate returns the cell under the point (x, y). ok is false when the point
// falls outside the board; a point in the gap after a cell belongs to that cell.
func (l Layout) Locate(x, y float64) (row, col int, ok bool) {
	if l.N < 1 || l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}

	c := math.Floor((x - l.OriginX) / (l.CellW + l.Gap))
	r := math.Floor((y - l.OriginY) / (l.CellH + l.Gap))
	if c < 0 || r < 0 || c >= float64(l.N) || r >= float64(l.N) {
		return 0, 0, false
	}
	return int(r), int(c), true
}

// CellRect returns the top-left corner and size of a cell
func (l Layout) CellRect(row, col int) (x, y, w, h float64) {
	x = l.OriginX + float64(col)*(l.CellW+l.Gap)
	y = l.OriginY + float64(row)*(l.CellH+l.Gap)
	return x, y, l.CellW, l.CellH
}

// Extent returns the width and height the whole board covers
func (l Layout) Extent() (w, h float64) {
	n := float64(l.N)
	return n*l.CellW + (n-1)*l.Gap, n*l.CellH + (n-1)*l.Gap
}
