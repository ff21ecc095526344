package viz

import (
	"math"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/layout"
)

// Projection maps layout units onto braille dots and terminal cells.
type Projection struct {
	PxPerDot float64
}

func (p Projection) scale() float64 {
	if p.PxPerDot <= 0 {
		return 1
	}
	return p.PxPerDot
}

// Dots converts a layout length to dots.
func (p Projection) Dots(v float64) int {
	return int(math.Round(v / p.scale()))
}

// Bounds is the layout size covered by a canvas of cols x rows cells.
func (p Projection) Bounds(cols, rows int) layout.Bounds {
	return layout.Bounds{
		Width:  float64(cols*2) * p.scale(),
		Height: float64(rows*4) * p.scale(),
	}
}

// Fit returns the projection a cols x rows canvas needs to hold films. The
// receiver's scale is the floor; crowded catalogs zoom out.
func (p Projection) Fit(films []catalog.Film, params layout.Params, cols, rows int) Projection {
	return Projection{PxPerDot: layout.FitScale(films, params, float64(cols*2), float64(rows*4), p.scale())}
}

// Point returns the layout position at the centre of cell (col, row).
func (p Projection) Point(col, row int) layout.Point {
	return layout.Point{
		X: (float64(col*2) + 1) * p.scale(),
		Y: (float64(row*4) + 2) * p.scale(),
	}
}

// Cell returns the cell that holds layout position pt.
func (p Projection) Cell(pt layout.Point) (int, int) {
	return p.Dots(pt.X) / 2, p.Dots(pt.Y) / 4
}

// DrawBubbles paints every bubble of l onto c, filled in its hue, then
// overlays labels centred on the larger bubbles. Bubbles later in the arena
// draw over earlier ones. highlight, when in range, is outlined in accent.
func DrawBubbles(c *Canvas, l *layout.Layout, proj Projection, highlight int, accent string) {
	if l == nil {
		return
	}
	bubbles := l.Bubbles()
	params := l.Params()
	for i, b := range bubbles {
		cx, cy := b.Center()
		x, y, r := proj.Dots(cx), proj.Dots(cy), proj.Dots(b.Radius)
		color := b.Color(params).Hex()
		c.FillCircle(x, y, r, color)
		if i == highlight {
			c.DrawCircle(x, y, r, accent)
		}
	}
	for _, b := range bubbles {
		if b.Label == "" {
			continue
		}
		cx, cy := b.Center()
		col, row := proj.Cell(layout.Point{X: cx, Y: cy})
		label := []rune(b.Label)
		// A bubble of radius r dots spans r cells.
		fit := max(1, int(float64(proj.Dots(b.Radius))*b.FontScale))
		if len(label) > fit {
			label = label[:fit]
		}
		c.Text(col-len(label)/2, row, string(label), labelColor(b, params))
	}
}

func labelColor(b layout.Bubble, p layout.Params) string {
	_, _, l := b.Color(p).Hsl()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
