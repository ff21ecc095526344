package tui

import "github.com/san-kum/filmdash/internal/dashboard"

// surface is the terminal side of dashboard.Surface. The model reads it
// when composing the frame.
type surface struct {
	active      dashboard.View
	visible     map[dashboard.View]bool
	sortVisible bool
	compact     bool
}

func newSurface() *surface {
	return &surface{visible: map[dashboard.View]bool{dashboard.Grid: true}, sortVisible: true}
}

func (s *surface) SetActiveControl(v dashboard.View) { s.active = v }

func (s *surface) HideAllContainers() {
	for v := range s.visible {
		delete(s.visible, v)
	}
}

func (s *surface) ShowContainer(v dashboard.View)      { s.visible[v] = true }
func (s *surface) SetSortControlsVisible(visible bool) { s.sortVisible = visible }
func (s *surface) SetSearchCompact(compact bool)       { s.compact = compact }
