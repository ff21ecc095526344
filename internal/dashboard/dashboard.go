// Package dashboard owns the catalog, the working set derived from it, and
// the coordinator that keeps one view showing that working set.
package dashboard

import (
	"errors"

	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/query"
	"github.com/san-kum/filmdash/internal/stats"
	"go.uber.org/zap"
)

// Dashboard is one page instance. The working set is replaced wholesale on
// every search or sort change.
type Dashboard struct {
	catalog catalog.Catalog
	loadErr error
	coord   *Coordinator
	logger  *zap.Logger

	working []catalog.Film
	term    string
	sort    query.SortKey
	stats   stats.Stats
	started bool
}

func New(cat catalog.Catalog, coord *Coordinator, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		catalog: cat,
		coord:   coord,
		logger:  logger,
		sort:    query.SortNone,
	}
}

// Open loads the catalog at path. A load failure is logged and kept for
// LoadErr; the dashboard continues with an empty catalog.
func Open(path string, coord *Coordinator, logger *zap.Logger) *Dashboard {
	cat, err := catalog.Load(path)
	d := New(cat, coord, logger)
	if err != nil {
		d.loadErr = err
		d.logger.Error("catalog load failed", zap.String("path", path), zap.Error(err))
		d.catalog = nil
	} else {
		d.logger.Info("catalog loaded", zap.String("path", path), zap.Int("films", cat.Len()))
	}
	return d
}

// Start computes the stats and renders the active view with the full catalog.
func (d *Dashboard) Start() error {
	d.stats = stats.Compute(d.catalog.Films())
	if d.stats.MalformedBoxOffice > 0 || d.stats.MalformedYears > 0 {
		d.logger.Warn("malformed numeric fields",
			zap.Int("box_office", d.stats.MalformedBoxOffice),
			zap.Int("release_year", d.stats.MalformedYears))
	}
	d.working = query.Apply(d.catalog.Films(), d.term, d.sort)
	d.started = true
	return d.coord.SwitchView(d.coord.Active(), d.working)
}

// Search filters the catalog by term, re-applies the selected sort and
// re-renders the active view. Before Start it only records the term.
func (d *Dashboard) Search(term string) error {
	d.term = term
	if !d.started {
		return nil
	}
	d.working = query.Apply(d.catalog.Films(), term, d.sort)
	d.logger.Debug("search", zap.String("term", term), zap.Int("matches", len(d.working)))
	return d.coord.RenderCurrent(d.working)
}

// SetSort reorders the working set and re-renders the active view. Before
// Start it only records the key.
func (d *Dashboard) SetSort(key query.SortKey) error {
	d.sort = key
	if !d.started {
		return nil
	}
	if key == query.SortNone {
		// Catalog order cannot be recovered from a sorted working set.
		d.working = query.Apply(d.catalog.Films(), d.term, key)
	} else {
		d.working = query.Sorted(d.working, key)
	}
	d.logger.Debug("sort", zap.String("key", string(key)))
	return d.coord.RenderCurrent(d.working)
}

func (d *Dashboard) SwitchView(v View) error {
	d.logger.Debug("switch view", zap.Stringer("from", d.coord.Active()), zap.Stringer("to", v))
	err := d.coord.SwitchView(v, d.working)
	if errors.Is(err, ErrUnknownView) {
		d.logger.Warn("unknown view", zap.Int("view", int(v)))
	}
	return err
}

// Refresh re-renders the active view with the current working set, e.g.
// after its container was resized.
func (d *Dashboard) Refresh() error {
	return d.coord.RenderCurrent(d.working)
}

// WorkingSet returns a copy of the films currently shown.
func (d *Dashboard) WorkingSet() []catalog.Film {
	return append([]catalog.Film(nil), d.working...)
}

func (d *Dashboard) Stats() stats.Stats       { return d.stats }
func (d *Dashboard) Term() string             { return d.term }
func (d *Dashboard) SortKey() query.SortKey   { return d.sort }
func (d *Dashboard) View() View               { return d.coord.Active() }
func (d *Dashboard) LoadErr() error           { return d.loadErr }
func (d *Dashboard) Catalog() catalog.Catalog { return d.catalog }
