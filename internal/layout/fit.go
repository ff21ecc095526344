package layout

import (
	"math"

	"github.com/san-kum/filmdash/internal/catalog"
)

// fill is the share of the padded area the bubbles' bounding squares may
// cover at the fitted scale.
const fill = 0.5

const (
	fitStep     = 0.5
	maxFitSteps = 400
)

// FitScale returns the smallest scale, starting at floor and growing in half
// steps, at which a w x h arena (in units of the scale) holds films: both
// padded sides take the largest bubble and the padded area leaves room to
// spare around every bubble's bounding square.
func FitScale(films []catalog.Film, p Params, w, h, floor float64) float64 {
	if floor <= 0 {
		floor = 1
	}
	if len(films) == 0 || w <= 0 || h <= 0 {
		return floor
	}

	need, largest := footprint(films, p)
	s := floor
	for i := 0; i < maxFitSteps; i++ {
		iw, ih := w*s-2*p.Padding, h*s-2*p.Padding
		if iw >= largest && ih >= largest && iw*ih*fill >= need {
			break
		}
		s += fitStep
	}
	return s
}

// footprint sums the bounding squares of the bubbles New would size for
// films, separation included, and reports the largest diameter.
func footprint(films []catalog.Film, p Params) (area, largest float64) {
	lo, hi := revenueRange(films)
	for _, f := range films {
		side := p.MinSize + sizeFraction(f.Revenue(), lo, hi)*(p.MaxSize-p.MinSize) + p.Separation
		area += side * side
		largest = math.Max(largest, side)
	}
	return area, largest
}
