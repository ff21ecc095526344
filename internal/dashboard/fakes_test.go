package dashboard_test

import (
	"errors"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/dashboard"
)

type fakeSurface struct {
	active       dashboard.View
	shown        map[dashboard.View]bool
	sortVisible  bool
	compact      bool
	hideAllCalls int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{shown: map[dashboard.View]bool{}}
}

func (s *fakeSurface) SetActiveControl(v dashboard.View) { s.active = v }
func (s *fakeSurface) HideAllContainers() {
	s.hideAllCalls++
	s.shown = map[dashboard.View]bool{}
}
func (s *fakeSurface) ShowContainer(v dashboard.View)      { s.shown[v] = true }
func (s *fakeSurface) SetSortControlsVisible(visible bool) { s.sortVisible = visible }
func (s *fakeSurface) SetSearchCompact(compact bool)       { s.compact = compact }

type recordingRenderer struct {
	renders  int
	releases int
	last     []catalog.Film
	err      error
}

func (r *recordingRenderer) Render(films []catalog.Film) error {
	r.renders++
	r.last = films
	return r.err
}

func (r *recordingRenderer) Release() { r.releases++ }

// plainRenderer has nothing to release.
type plainRenderer struct {
	renders int
	last    []catalog.Film
}

func (r *plainRenderer) Render(films []catalog.Film) error {
	r.renders++
	r.last = films
	return nil
}

type countingChart struct{ destroyed *int }

func (c countingChart) View() string { return "" }
func (c countingChart) Destroy()     { *c.destroyed++ }

type countingCollaborator struct {
	draws     int
	destroyed int
}

func (c *countingCollaborator) Draw(chart.Dataset, chart.Options) (chart.Chart, error) {
	c.draws++
	return countingChart{destroyed: &c.destroyed}, nil
}

var errRender = errors.New("render failed")

func titles(films []catalog.Film) []string {
	out := make([]string, len(films))
	for i, f := range films {
		out[i] = f.Title
	}
	return out
}
