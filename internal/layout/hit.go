package layout

import "math"

// Point is a position in layout or screen units.
type Point struct {
	X, Y float64
}

// Size is a width and height in the same units as Point.
type Size struct {
	W, H float64
}

// HitTest returns the index of the top-most bubble containing (x, y). Later
// bubbles are drawn over earlier ones.
func (l *Layout) HitTest(x, y float64) (int, bool) {
	for i := len(l.bubbles) - 1; i >= 0; i-- {
		if l.bubbles[i].Contains(x, y) {
			return i, true
		}
	}
	return -1, false
}

// Bubble returns the bubble at index i.
func (l *Layout) Bubble(i int) (Bubble, bool) {
	if i < 0 || i >= len(l.bubbles) {
		return Bubble{}, false
	}
	return l.bubbles[i], true
}

// TooltipPosition places a tooltip offset from the pointer, kept at least
// margin away from the container edges where the container is large enough.
func TooltipPosition(pointer Point, container, tooltip Size, offset, margin float64) Point {
	x := math.Min(container.W-tooltip.W-margin, math.Max(margin, pointer.X+offset))
	y := math.Min(container.H-tooltip.H-margin, math.Max(margin, pointer.Y+offset))
	return Point{X: math.Max(0, x), Y: math.Max(0, y)}
}
