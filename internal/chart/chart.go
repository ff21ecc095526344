// Package chart renders the working set as a static bar chart of box office
// revenue. Drawing is delegated to a Collaborator; the Renderer owns the
// single live Chart and tears it down before drawing a replacement.
package chart

import (
	"errors"
	"fmt"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/query"
)

// ErrNoCollaborator is returned when a Renderer has nothing to draw with.
var ErrNoCollaborator = errors.New("chart: no collaborator")

// Dataset is the ordered (label, value) series handed to a collaborator.
type Dataset struct {
	Name   string
	Labels []string
	Values []float64
}

// Options are the static drawing settings. Widths and heights are in
// terminal cells.
type Options struct {
	Width         int
	Height        int
	BarWidth      int
	BeginAtZero   bool
	Interactive   bool
	Tooltip       bool
	Legend        bool
	LabelMax      int
	LabelRotation int
	Color         string
	ValueFormat   func(float64) string
}

// Chart is one drawn chart instance.
type Chart interface {
	View() string
	Destroy()
}

// Collaborator draws charts.
type Collaborator interface {
	Draw(ds Dataset, opts Options) (Chart, error)
}

// Config sizes the drawing surface.
type Config struct {
	MinWidth int
	BarWidth int
	Height   int
	LabelMax int
	Color    string
}

func DefaultConfig() Config {
	return Config{
		MinWidth: 60,
		BarWidth: 3,
		Height:   15,
		LabelMax: 15,
		Color:    "#3498db",
	}
}

// Renderer keeps at most one live chart.
type Renderer struct {
	collab  Collaborator
	cfg     Config
	current Chart
	dataset Dataset
}

func NewRenderer(c Collaborator, cfg Config) *Renderer {
	return &Renderer{collab: c, cfg: cfg}
}

// Render draws films in descending box office order, whatever order they
// arrive in. Any previous chart is destroyed first.
func (r *Renderer) Render(films []catalog.Film) error {
	if r.collab == nil {
		return ErrNoCollaborator
	}

	sorted := query.Sorted(films, query.SortBoxOfficeDesc)
	ds := Dataset{
		Name:   "Box Office Revenue",
		Labels: make([]string, len(sorted)),
		Values: make([]float64, len(sorted)),
	}
	for i, f := range sorted {
		ds.Labels[i] = f.Title
		ds.Values[i] = f.Revenue()
	}

	r.Release()

	ch, err := r.collab.Draw(ds, r.Options(len(sorted)))
	if err != nil {
		return fmt.Errorf("draw chart: %w", err)
	}
	r.current = ch
	r.dataset = ds
	return nil
}

// Options returns the static settings for a chart of n bars.
func (r *Renderer) Options(n int) Options {
	return Options{
		Width:         max(r.cfg.MinWidth, n*r.cfg.BarWidth),
		Height:        r.cfg.Height,
		BarWidth:      r.cfg.BarWidth,
		BeginAtZero:   true,
		LabelMax:      r.cfg.LabelMax,
		LabelRotation: 45,
		Color:         r.cfg.Color,
		ValueFormat:   format.Currency,
	}
}

// Release destroys the live chart, if any.
func (r *Renderer) Release() {
	if r.current != nil {
		r.current.Destroy()
		r.current = nil
	}
}

// View is the live chart's rendering, or "" when none is live.
func (r *Renderer) View() string {
	if r.current == nil {
		return ""
	}
	return r.current.View()
}

func (r *Renderer) Live() bool { return r.current != nil }

// Dataset is the series behind the live chart.
func (r *Renderer) Dataset() Dataset { return r.dataset }
