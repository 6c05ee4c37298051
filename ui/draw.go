package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
