package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidParams indicates a parameter set that cannot produce a layout.
var ErrInvalidParams = errors.New("layout: invalid parameters")

// Params tunes sizing and the relaxation. Lengths are in layout pixels.
type Params struct {
	MinSize        float64
	MaxSize        float64
	Padding        float64
	Strength       float64
	Separation     float64
	Damping        float64
	Bounce         float64
	Threshold      float64
	MaxIterations  int
	LabelThreshold float64
	LabelMax       int
	HueStart       float64
	HueSpan        float64
	Saturation     float64
	Lightness      float64
}

func DefaultParams() Params {
	return Params{
		MinSize:        40,
		MaxSize:        150,
		Padding:        50,
		Strength:       0.05,
		Separation:     5,
		Damping:        0.9,
		Bounce:         0.5,
		Threshold:      0.01,
		MaxIterations:  5000,
		LabelThreshold: 50,
		LabelMax:       20,
		HueStart:       210,
		HueSpan:        150,
		Saturation:     0.7,
		Lightness:      0.5,
	}
}

// Validate checks the invariants the relaxation depends on.
func (p Params) Validate() error {
	switch {
	case p.MinSize <= 0 || p.MaxSize < p.MinSize:
		return fmt.Errorf("%w: sizes must satisfy 0 < min <= max, got %.1f..%.1f", ErrInvalidParams, p.MinSize, p.MaxSize)
	case p.Padding < 0:
		return fmt.Errorf("%w: padding must be non-negative, got %f", ErrInvalidParams, p.Padding)
	case p.Strength <= 0:
		return fmt.Errorf("%w: strength must be positive, got %f", ErrInvalidParams, p.Strength)
	case p.Damping <= 0 || p.Damping >= 1:
		return fmt.Errorf("%w: damping must be in (0, 1), got %f", ErrInvalidParams, p.Damping)
	case p.Bounce < 0 || p.Bounce > 1:
		return fmt.Errorf("%w: bounce must be in [0, 1], got %f", ErrInvalidParams, p.Bounce)
	case p.Threshold <= 0:
		return fmt.Errorf("%w: threshold must be positive, got %f", ErrInvalidParams, p.Threshold)
	case p.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidParams, p.MaxIterations)
	}
	return nil
}
