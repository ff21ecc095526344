package dashboard

import (
	"fmt"

	"github.com/san-kum/filmdash/internal/catalog"
)

// Surface is the set of page controls the coordinator toggles.
type Surface interface {
	SetActiveControl(v View)
	HideAllContainers()
	ShowContainer(v View)
	SetSortControlsVisible(visible bool)
	SetSearchCompact(compact bool)
}

// Renderer draws the working set into one view's container.
type Renderer interface {
	Render(films []catalog.Film) error
}

// Releaser is implemented by renderers that hold resources while their
// view is showing: a live chart, a running animation.
type Releaser interface {
	Release()
}

// Coordinator keeps exactly one view active and the surface in step with it.
type Coordinator struct {
	surface   Surface
	renderers map[View]Renderer
	active    View
}

// NewCoordinator needs a renderer for every view. The initial view is Grid.
func NewCoordinator(s Surface, renderers map[View]Renderer) (*Coordinator, error) {
	for _, v := range Views() {
		if renderers[v] == nil {
			return nil, fmt.Errorf("%w: no renderer for %s", ErrUnknownView, v)
		}
	}
	return &Coordinator{surface: s, renderers: renderers, active: Grid}, nil
}

// SwitchView activates target and renders films into it. Leaving a view
// releases its renderer; switching to the active view re-renders it.
func (c *Coordinator) SwitchView(target View, films []catalog.Film) error {
	r, ok := c.renderers[target]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, target)
	}

	if target != c.active {
		if rel, ok := c.renderers[c.active].(Releaser); ok {
			rel.Release()
		}
	}
	c.active = target

	c.surface.SetActiveControl(target)
	c.surface.HideAllContainers()
	c.surface.ShowContainer(target)
	c.surface.SetSortControlsVisible(target == Grid)
	c.surface.SetSearchCompact(target != Grid)

	if err := r.Render(films); err != nil {
		return fmt.Errorf("render %s: %w", target, err)
	}
	return nil
}

// RenderCurrent re-renders the active view.
func (c *Coordinator) RenderCurrent(films []catalog.Film) error {
	if err := c.renderers[c.active].Render(films); err != nil {
		return fmt.Errorf("render %s: %w", c.active, err)
	}
	return nil
}

func (c *Coordinator) Active() View { return c.active }
