package layout

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Matthew1231A/conways-game-of-life/model"
)

// Palette colours cells by polarity and age. Living cells fade from Fresh to
// Old, dead cells fade from Trail to Background, both over AgeSpan generations.
type Palette struct {
	Fresh, Old        colorful.Color
	Trail, Background colorful.Color
	AgeSpan           int
}

// DefaultPalette draws on a black background with red living cells
func DefaultPalette(ageSpan int) Palette {
	return Palette{
		Fresh:      colorful.Color{R: 1, G: 0.23, B: 0.19},
		Old:        colorful.Color{R: 0.5, G: 0, B: 0},
		Trail:      colorful.Color{R: 0.3, G: 0.3, B: 0.35},
		Background: colorful.Color{},
		AgeSpan:    ageSpan,
	}
}

// ColorFor returns the colour a cell is drawn with
func (p Palette) ColorFor(c model.Cell) colorful.Color {
	if c.IsAlive() {
		return blend(p.Fresh, p.Old, p.fade(c.Age()))
	}
	if c.Age() == model.MaxAge {
		return p.Background
	}
	return blend(p.Trail, p.Background, p.fade(c.Age()))
}

func (p Palette) fade(age uint8) float64 {
	return math.Min(float64(age)/float64(max(p.AgeSpan, 1)), 1)
}

func blend(from, to colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return from.BlendLab(to, t).Clamped()
}
