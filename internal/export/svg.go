// Package export renders bubble layouts as standalone SVG documents.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/viz"
)

// LayoutToSVG draws every bubble of l as a filled circle with its label and
// a hover title. Coordinates are layout pixels.
func LayoutToSVG(l *layout.Layout, background string) string {
	if l == nil {
		return ""
	}
	b := l.Bounds()
	p := l.Params()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, b.Width, b.Height, b.Width, b.Height, background))

	for _, bub := range l.Bubbles() {
		cx, cy := bub.Center()
		tip := fmt.Sprintf("%s (%s) %s", bub.Film.Title, bub.Film.ReleaseYear, format.BoxOffice(bub.Film.BoxOffice))
		sb.WriteString(fmt.Sprintf(`<g><title>%s</title>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="0.85"/>
`, html.EscapeString(tip), cx, cy, bub.Radius, bub.Color(p).Hex()))
		if bub.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dominant-baseline="middle" fill="#ffffff">%s</text>
`, cx, cy, 12*bub.FontScale, html.EscapeString(bub.Label)))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot in
// its cell's color. Text overlays are not exported.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	dotRadius := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.Lit(x, y) {
				continue
			}
			color := canvas.Colors[y/4][x/2]
			if color == "" {
				color = "#ffffff"
			}
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, color))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
