package caret

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// goldenFraction of the color wheel stepped per draw. An irrational step
// never revisits a hue, so nearby draws stay far apart on the wheel.
const goldenFraction = 0.618033988749895

// ColorGenerator yields an endless sequence of visually distinct colors for
// labels that do not pick one. Each instance owns its cursor; there is no
// shared generator anywhere in the package.
type ColorGenerator struct {
	hue float64
}

// NewColorGenerator starts a fresh sequence. Sequences are restartable only
// by constructing a new generator.
func NewColorGenerator() *ColorGenerator {
	return &ColorGenerator{}
}

// Next returns the next color. Consecutive draws always differ, and runs of
// at least twenty draws contain no duplicates.
func (g *ColorGenerator) Next() Color {
	g.hue = math.Mod(g.hue+goldenFraction, 1.0)
	c := colorful.Hsl(g.hue*360, 0.9, 0.7)
	r, green, b := c.RGB255()
	return RGB(r, green, b)
}
