package tui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
)

// chartPane shows the live bar chart cropped to the pane.
type chartPane struct {
	renderer      *chart.Renderer
	width, height int
}

func newChartPane(r *chart.Renderer, w, h int) *chartPane {
	return &chartPane{renderer: r, width: w, height: h}
}

func (p *chartPane) Render(films []catalog.Film) error { return p.renderer.Render(films) }
func (p *chartPane) Release()                          { p.renderer.Release() }

func (p *chartPane) SetSize(w, h int) {
	p.width, p.height = w, h
}

func (p *chartPane) View() string {
	lines := strings.Split(p.renderer.View(), "\n")
	if len(lines) > p.height {
		lines = lines[:p.height]
	}
	for i, l := range lines {
		lines[i] = truncate.String(l, uint(max(p.width, 0)))
	}
	return strings.Join(lines, "\n")
}
