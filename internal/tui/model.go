// Package tui is the interactive terminal dashboard: a search box, a sort
// selector, three view tabs and the grid, chart and bubble panes.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/chart"
	"github.com/san-kum/filmdash/internal/dashboard"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/query"
	"github.com/san-kum/filmdash/internal/viz"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	searchWidth        = 40
	compactSearchWidth = 16
)

// Options configure a Model. Zero layout and chart settings fall back to
// their package defaults.
type Options struct {
	DataPath string
	Theme    string
	View     dashboard.View
	Sort     query.SortKey
	PxPerDot float64
	FPS      int
	Seed     int64
	Params   layout.Params
	Chart    chart.Config
	Logger   *zap.Logger
}

// Model is the bubbletea model. Panes are shared through pointers, so copies
// made by the runtime all drive the same dashboard.
type Model struct {
	dash    *dashboard.Dashboard
	surface *surface
	grid    *gridPane
	chart   *chartPane
	bubbles *bubblePane

	search textinput.Model
	help   help.Model
	theme  viz.Theme
	styles *viz.Styles
	logger *zap.Logger

	width, height int
	err           error
}

// New loads the catalog and renders the initial view. A catalog that fails
// to load still yields a working model that shows an error banner.
func New(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := viz.GetTheme(opts.Theme)
	styles := theme.Styles()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	if opts.Sort == "" {
		opts.Sort = query.SortNone
	}

	m := Model{
		surface: newSurface(),
		search:  textinput.New(),
		help:    help.New(),
		theme:   theme,
		styles:  &styles,
		logger:  logger,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.search.Placeholder = "title, director or year"
	m.search.Prompt = "/ "
	m.search.Width = searchWidth

	if opts.Params == (layout.Params{}) {
		opts.Params = layout.DefaultParams()
	}
	chartCfg := opts.Chart
	if chartCfg == (chart.Config{}) {
		chartCfg = chart.DefaultConfig()
	}
	if chartCfg.Color == "" {
		chartCfg.Color = string(theme.Bar)
	}
	w, h := m.bodySize()
	m.grid = newGridPane(m.styles, w, h)
	m.chart = newChartPane(chart.NewRenderer(chart.AsciiGraph{}, chartCfg), w, h)
	m.bubbles = newBubblePane(
		layout.NewAnimator(opts.Params, rng),
		viz.Projection{PxPerDot: opts.PxPerDot},
		opts.FPS, w, h,
	)

	coord, err := dashboard.NewCoordinator(m.surface, map[dashboard.View]dashboard.Renderer{
		dashboard.Grid:   m.grid,
		dashboard.Chart:  m.chart,
		dashboard.Bubble: m.bubbles,
	})
	if err != nil {
		return Model{}, err
	}

	m.dash = dashboard.Open(opts.DataPath, coord, logger)
	m.resize()
	if err := m.dash.SetSort(opts.Sort); err != nil {
		return Model{}, err
	}
	if err := m.dash.Start(); err != nil {
		return Model{}, err
	}
	if opts.View != dashboard.Grid {
		if err := m.dash.SwitchView(opts.View); err != nil {
			return Model{}, err
		}
	}
	return m, nil
}

// Run starts the program on the alternate screen with mouse motion events.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.bubbles.schedule()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.check(m.dash.Refresh())
		return m, m.bubbles.schedule()

	case frameMsg:
		return m, m.bubbles.frame(msg.token)

	case tea.MouseMsg:
		if m.dash.View() == dashboard.Bubble {
			m.bubbles.hover(msg.X, msg.Y-m.headerHeight())
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.Blur):
		m.search.Blur()
		return m, nil
	}

	prev := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != prev {
		m.check(m.dash.Search(v))
	}
	return m, tea.Batch(cmd, m.bubbles.schedule())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Search):
		return m, m.search.Focus()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, keys.Grid):
		m.check(m.dash.SwitchView(dashboard.Grid))
	case key.Matches(msg, keys.Chart):
		m.check(m.dash.SwitchView(dashboard.Chart))
	case key.Matches(msg, keys.Bubble):
		m.check(m.dash.SwitchView(dashboard.Bubble))
	case key.Matches(msg, keys.SortNext):
		if m.surface.sortVisible {
			m.check(m.dash.SetSort(m.dash.SortKey().Next(1)))
		}
	case key.Matches(msg, keys.SortPrev):
		if m.surface.sortVisible {
			m.check(m.dash.SetSort(m.dash.SortKey().Next(-1)))
		}
	case key.Matches(msg, keys.Reseed):
		if m.dash.View() == dashboard.Bubble {
			m.check(m.dash.Refresh())
		}
	case key.Matches(msg, keys.Theme):
		m.cycleTheme()
	case key.Matches(msg, keys.Up):
		m.grid.viewport.LineUp(1)
	case key.Matches(msg, keys.Down):
		m.grid.viewport.LineDown(1)
	case key.Matches(msg, keys.PageUp):
		m.grid.viewport.ViewUp()
	case key.Matches(msg, keys.PageDown):
		m.grid.viewport.ViewDown()
	}
	return m, m.bubbles.schedule()
}

// check records a render failure for the status line.
func (m *Model) check(err error) {
	m.err = err
	if err != nil {
		m.logger.Error("render failed", zap.Stringer("view", m.dash.View()), zap.Error(err))
	}
}

func (m *Model) cycleTheme() {
	names := viz.ThemeNames()
	for i, name := range names {
		if name == m.theme.Name {
			m.theme = viz.GetTheme(names[(i+1)%len(names)])
			break
		}
	}
	*m.styles = m.theme.Styles()
	m.check(m.dash.Refresh())
}

func (m *Model) resize() {
	w, h := m.bodySize()
	m.grid.SetSize(w, h)
	m.chart.SetSize(w, h)
	m.bubbles.SetSize(w, h)
}

func (m Model) bodySize() (int, int) {
	return max(m.width, 1), max(m.height-m.headerHeight()-m.footerHeight(), 1)
}

func (m Model) headerHeight() int { return lipgloss.Height(m.header()) }
func (m Model) footerHeight() int { return lipgloss.Height(m.footer()) }

func (m Model) View() string {
	_, h := m.bodySize()
	body := lipgloss.NewStyle().MaxHeight(h).Render(m.body())
	body += strings.Repeat("\n", max(0, h-lipgloss.Height(body)))
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), body, m.footer())
}

func (m Model) body() string {
	switch {
	case m.surface.visible[dashboard.Chart]:
		return m.chart.View()
	case m.surface.visible[dashboard.Bubble]:
		return m.bubbles.View(*m.styles, string(m.theme.Accent))
	default:
		return m.grid.View()
	}
}

func (m Model) header() string {
	s := m.styles
	var rows []string

	if m.dash != nil && m.dash.LoadErr() != nil {
		rows = append(rows, s.ErrorBanner.Render("could not load films: "+loadReason(m.dash.LoadErr())))
	}

	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		viz.GradientText("filmdash", m.theme.Primary, m.theme.Accent), "  ", m.statsLine()))

	search := m.search
	if m.surface.compact {
		search.Width = compactSearchWidth
	}
	controls := search.View()
	if m.surface.sortVisible && m.dash != nil {
		controls += "   " + s.StatLabel.Render("sort ") + s.StatValue.Render(m.dash.SortKey().Label())
	}
	rows = append(rows, controls, m.tabs(), s.Separator(m.width))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) statsLine() string {
	if m.dash == nil {
		return ""
	}
	d := m.dash.Stats().Display()
	s := m.styles
	item := func(label, value string) string {
		return s.StatLabel.Render(label+" ") + s.StatValue.Render(value)
	}
	return strings.Join([]string{
		item("Films", d.TotalFilms),
		item("Total", d.TotalBoxOffice),
		item("Average", d.AvgBoxOffice),
		item("Latest", d.RecentYear),
	}, s.Subtle.Render(" · "))
}

func (m Model) tabs() string {
	tabs := make([]string, 0, 3)
	for i, v := range dashboard.Views() {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if v == m.surface.active {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) footer() string {
	status := ""
	if m.dash != nil {
		status = fmt.Sprintf("%d of %d films", len(m.dash.WorkingSet()), m.dash.Catalog().Len())
		if m.dash.View() == dashboard.Bubble {
			status += "  " + m.bubbles.status()
		}
	}
	if m.err != nil {
		status += "  " + m.styles.ErrorBanner.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.KeyHint.Render(status), m.help.View(keys))
}

func loadReason(err error) string {
	var le *catalog.LoadError
	if errors.As(err, &le) {
		return le.Err.Error()
	}
	return err.Error()
}
