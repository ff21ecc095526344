package layout

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/query"
)

// Bounds is the outer container size. Bubbles stay inside it minus Padding.
type Bounds struct {
	Width, Height float64
}

// Result summarizes a synchronous run.
type Result struct {
	Iterations int
	Converged  bool
	HitCap     bool
	MaxOverlap float64
}

// Layout is the per-render bubble arena.
type Layout struct {
	params     Params
	bounds     Bounds
	bubbles    []Bubble
	iterations int
	settled    bool
}

// New sizes and seeds one bubble per film. Films are ordered by descending
// box office first, so the largest bubbles come first in the arena. A nil
// rng seeds from the clock.
func New(films []catalog.Film, bounds Bounds, p Params, rng *rand.Rand) *Layout {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sorted := query.Sorted(films, query.SortBoxOfficeDesc)

	l := &Layout{
		params:  p,
		bounds:  bounds,
		bubbles: make([]Bubble, len(sorted)),
	}
	if len(sorted) == 0 {
		l.settled = true
		return l
	}

	minRev, maxRev := revenueRange(sorted)
	minYear, maxYear := yearRange(sorted)
	innerW, innerH := l.inner()

	for i, f := range sorted {
		size := p.MinSize + sizeFraction(f.Revenue(), minRev, maxRev)*(p.MaxSize-p.MinSize)
		yearFrac := fraction(float64(f.Year()), float64(minYear), float64(maxYear))

		b := Bubble{
			Film:     f,
			Size:     size,
			Radius:   size / 2,
			YearFrac: yearFrac,
			Hue:      math.Mod(p.HueStart+yearFrac*p.HueSpan, 360),
			X:        p.Padding + yearFrac*math.Max(0, innerW-size),
			Y:        p.Padding + rng.Float64()*math.Max(0, innerH-size),
		}
		if size > p.LabelThreshold {
			b.Label = format.Truncate(f.Title, p.LabelMax)
			b.FontScale = math.Max(0.6, math.Min(1, size/100))
		}
		l.bubbles[i] = b
	}
	return l
}

// Step advances the relaxation by one frame and reports whether any bubble
// is still moving.
//
// Pairs are visited once each (i < j). Bubble i moves as soon as every pair
// touching it has been processed, so later bubbles see its new position
// within the same frame.
func (l *Layout) Step() bool {
	p := l.params
	bs := l.bubbles
	n := len(bs)

	for i := 0; i < n; i++ {
		a := &bs[i]
		for j := i + 1; j < n; j++ {
			b := &bs[j]
			ax, ay := a.Center()
			bx, by := b.Center()
			dx, dy := bx-ax, by-ay
			dist := math.Sqrt(dx*dx + dy*dy)
			minDist := a.Radius + b.Radius + p.Separation

			if dist < minDist {
				force := (minDist - dist) * p.Strength
				angle := math.Atan2(dy, dx)
				fx, fy := math.Cos(angle)*force, math.Sin(angle)*force
				b.VX += fx
				b.VY += fy
				a.VX -= fx
				a.VY -= fy
			}
		}

		a.X += a.VX
		a.Y += a.VY
		a.VX *= p.Damping
		a.VY *= p.Damping
		l.contain(a)
	}

	l.iterations++
	moving := false
	for i := range bs {
		if bs[i].Moving(p.Threshold) {
			moving = true
			break
		}
	}
	l.settled = !moving
	return moving
}

// contain clamps b to the padded bounds and bounces the offending velocity.
func (l *Layout) contain(b *Bubble) {
	p := l.params
	innerW, innerH := l.inner()
	minX, minY := p.Padding, p.Padding
	maxX := math.Max(minX, p.Padding+innerW-b.Size)
	maxY := math.Max(minY, p.Padding+innerH-b.Size)

	if b.X < minX {
		b.X = minX
		b.VX *= -p.Bounce
	}
	if b.X > maxX {
		b.X = maxX
		b.VX *= -p.Bounce
	}
	if b.Y < minY {
		b.Y = minY
		b.VY *= -p.Bounce
	}
	if b.Y > maxY {
		b.Y = maxY
		b.VY *= -p.Bounce
	}
}

// Run steps until the layout settles, ctx is done, or maxIter steps have
// run in total. maxIter <= 0 uses Params.MaxIterations.
func (l *Layout) Run(ctx context.Context, maxIter int) (Result, error) {
	if maxIter <= 0 {
		maxIter = l.params.MaxIterations
	}

	for !l.settled {
		select {
		case <-ctx.Done():
			return l.result(false), ctx.Err()
		default:
		}

		if l.iterations >= maxIter {
			return l.result(true), nil
		}
		l.Step()
	}
	return l.result(false), nil
}

func (l *Layout) result(hitCap bool) Result {
	return Result{
		Iterations: l.iterations,
		Converged:  l.settled,
		HitCap:     hitCap,
		MaxOverlap: l.MaxOverlap(),
	}
}

// MaxOverlap is the deepest pairwise penetration, ignoring the separation
// margin. Zero means no two circles intersect.
func (l *Layout) MaxOverlap() float64 {
	worst := 0.0
	for i := range l.bubbles {
		for j := i + 1; j < len(l.bubbles); j++ {
			a, b := l.bubbles[i], l.bubbles[j]
			ax, ay := a.Center()
			bx, by := b.Center()
			if o := a.Radius + b.Radius - math.Hypot(bx-ax, by-ay); o > worst {
				worst = o
			}
		}
	}
	return worst
}

// Bubbles returns a copy of the arena in draw order.
func (l *Layout) Bubbles() []Bubble {
	out := make([]Bubble, len(l.bubbles))
	copy(out, l.bubbles)
	return out
}

func (l *Layout) Len() int        { return len(l.bubbles) }
func (l *Layout) Iterations() int { return l.iterations }
func (l *Layout) Settled() bool   { return l.settled }
func (l *Layout) Bounds() Bounds  { return l.bounds }
func (l *Layout) Params() Params  { return l.params }

func (l *Layout) inner() (float64, float64) {
	return math.Max(0, l.bounds.Width-2*l.params.Padding), math.Max(0, l.bounds.Height-2*l.params.Padding)
}

// revenueRange spans the positive revenues only; see sizeFraction.
func revenueRange(films []catalog.Film) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, f := range films {
		if v := f.Revenue(); v > 0 {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

func yearRange(films []catalog.Film) (int, int) {
	lo, hi := films[0].Year(), films[0].Year()
	for _, f := range films[1:] {
		y := f.Year()
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return lo, hi
}

// sizeFraction interpolates v between lo and hi on a log scale. Revenues
// are expected to be positive; v <= 0 maps to the smallest size.
func sizeFraction(v, lo, hi float64) float64 {
	if v <= 0 {
		return 0
	}
	if hi == lo {
		return 0.5
	}
	return clamp01((math.Log(v) - math.Log(lo)) / (math.Log(hi) - math.Log(lo)))
}

// fraction is the linear position of v in [lo, hi], 0.5 for an empty range.
func fraction(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return clamp01((v - lo) / (hi - lo))
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
