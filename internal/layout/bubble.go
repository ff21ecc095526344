package layout

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/filmdash/internal/catalog"
)

// Bubble is one film's circle. X and Y locate the top-left corner of the
// bubble's bounding square.
type Bubble struct {
	Film      catalog.Film
	X, Y      float64
	VX, VY    float64
	Size      float64
	Radius    float64
	YearFrac  float64
	Hue       float64
	Label     string
	FontScale float64
}

// Center returns the circle centre.
func (b Bubble) Center() (float64, float64) {
	return b.X + b.Radius, b.Y + b.Radius
}

// Contains reports whether (x, y) lies inside the circle.
func (b Bubble) Contains(x, y float64) bool {
	cx, cy := b.Center()
	return math.Hypot(x-cx, y-cy) <= b.Radius
}

// Moving reports whether either velocity component exceeds threshold.
func (b Bubble) Moving(threshold float64) bool {
	return math.Abs(b.VX) > threshold || math.Abs(b.VY) > threshold
}

// Color is the bubble fill.
func (b Bubble) Color(p Params) colorful.Color {
	return colorful.Hsl(b.Hue, p.Saturation, p.Lightness)
}
