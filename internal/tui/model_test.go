package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/filmdash/internal/dashboard"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/query"
)

const filmsJSON = `[
  {"title": "Alpha", "director": "X", "release_year": "2000", "country_of_origin": "US", "box_office": "$100"},
  {"title": "Beta", "director": "Y", "release_year": "2010", "country_of_origin": "UK", "box_office": "$200"}
]`

func newTestModel(t *testing.T) Model {
	t.Helper()
	path := filepath.Join(t.TempDir(), "films.json")
	if err := os.WriteFile(path, []byte(filmsJSON), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := New(Options{DataPath: path, Seed: 1, PxPerDot: 4, FPS: 60})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return m
}

func titles(m Model) []string {
	ws := m.dash.WorkingSet()
	out := make([]string, len(ws))
	for i, f := range ws {
		out[i] = f.Title
	}
	return out
}

func TestInitialGrid(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Films 2", "$300", "$150", "2010", "Alpha", "Beta", "Director: X", "sort"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in initial view:\n%s", want, view)
		}
	}
	if m.dash.View() != dashboard.Grid {
		t.Errorf("expected grid view, got %s", m.dash.View())
	}
}

func TestSwitchToChartAndBack(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "2")
	if m.dash.View() != dashboard.Chart {
		t.Fatalf("expected chart view, got %s", m.dash.View())
	}
	if m.surface.sortVisible || !m.surface.compact {
		t.Error("chart view should hide sort controls and compact the search box")
	}
	if view := m.View(); !strings.Contains(view, "$200") {
		t.Errorf("expected currency axis in chart view:\n%s", view)
	}
	if !m.chart.renderer.Live() {
		t.Error("expected a live chart")
	}

	m = press(t, m, "g")
	if m.chart.renderer.Live() {
		t.Error("leaving the chart view should destroy the chart")
	}
	if !m.surface.sortVisible {
		t.Error("grid view should show sort controls")
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/")
	if !m.search.Focused() {
		t.Fatal("expected search to take focus")
	}
	m = press(t, m, "x")
	if got := titles(m); len(got) != 1 || got[0] != "Alpha" {
		t.Errorf("expected [Alpha], got %v", got)
	}

	// Keys typed into the search box are not commands.
	m = press(t, m, "2")
	if m.dash.View() != dashboard.Grid {
		t.Error("typing switched the view")
	}
	if len(titles(m)) != 0 {
		t.Errorf("expected no match for x2, got %v", titles(m))
	}
	if !strings.Contains(m.View(), "no films match") {
		t.Error("expected empty notice")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.search.Focused() {
		t.Error("esc should blur the search box")
	}
}

func TestSortCycling(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "s")
	if m.dash.SortKey() != query.SortBoxOfficeDesc {
		t.Fatalf("expected box office desc, got %s", m.dash.SortKey())
	}
	if got := titles(m); got[0] != "Beta" {
		t.Errorf("expected Beta first, got %v", got)
	}

	m = press(t, m, "S")
	if m.dash.SortKey() != query.SortNone {
		t.Errorf("expected catalog order, got %s", m.dash.SortKey())
	}

	m = press(t, m, "c")
	m = press(t, m, "s")
	if m.dash.SortKey() != query.SortNone {
		t.Error("sort changed while its control was hidden")
	}
}

func TestBubbleFrames(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	if cmd == nil {
		t.Fatal("expected the first frame to be scheduled")
	}
	tok := m.bubbles.animator.Token()

	if _, stale := update(t, m, frameMsg{token: tok - 1}); stale != nil {
		t.Error("stale frame was rescheduled")
	}

	steps := 0
	for cmd != nil && steps < layout.DefaultParams().MaxIterations+1 {
		m, cmd = update(t, m, frameMsg{token: tok})
		steps++
	}
	if m.bubbles.animator.Running() {
		t.Fatal("animation never stopped")
	}
	if !strings.Contains(m.View(), "steps") {
		t.Error("expected run status in footer")
	}

	m = press(t, m, "1")
	if m.bubbles.animator.Layout() != nil {
		t.Error("leaving the bubble view should cancel the run")
	}
	if _, cmd := update(t, m, frameMsg{token: tok}); cmd != nil {
		t.Error("frame from a cancelled run was rescheduled")
	}
}

func TestReseedRestartsRun(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "b")
	first := m.bubbles.animator.Token()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.bubbles.animator.Token() == first {
		t.Error("reseed kept the old run")
	}
	if cmd == nil {
		t.Error("expected a frame for the new run")
	}
}

func TestBubbleTooltip(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "3")

	l := m.bubbles.animator.Layout()
	b, ok := l.Bubble(0)
	if !ok {
		t.Fatal("expected a bubble")
	}
	cx, cy := b.Center()
	col, row := m.bubbles.proj.Cell(layout.Point{X: cx, Y: cy})

	m, _ = update(t, m, tea.MouseMsg{X: col, Y: row + m.headerHeight(), Action: tea.MouseActionMotion})
	if view := m.View(); !strings.Contains(view, "Box office: $") {
		t.Errorf("expected tooltip over hovered bubble:\n%s", view)
	}

	m, _ = update(t, m, tea.MouseMsg{X: -1, Y: -1, Action: tea.MouseActionMotion})
	if strings.Contains(m.View(), "Box office: $") {
		t.Error("tooltip should hide when the pointer leaves the pane")
	}
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "3")
	before := m.bubbles.animator.Token()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	w, h := m.bodySize()
	if m.grid.viewport.Width != w || m.bubbles.rows != h || m.chart.width != w {
		t.Errorf("panes not resized to %dx%d", w, h)
	}
	if m.bubbles.animator.Token() == before {
		t.Error("resize should restart the layout for the new bounds")
	}
	if got := len(strings.Split(m.View(), "\n")); got > 20 {
		t.Errorf("view taller than the window: %d rows", got)
	}
}

func TestLoadFailureBanner(t *testing.T) {
	m, err := New(Options{DataPath: filepath.Join(t.TempDir(), "missing.json")})
	if err != nil {
		t.Fatalf("load failure should not be fatal: %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "could not load films") {
		t.Errorf("expected error banner:\n%s", view)
	}
	if !strings.Contains(view, "Films 0") || !strings.Contains(view, "—") {
		t.Errorf("expected empty stats placeholders:\n%s", view)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
