package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search, Blur        key.Binding
	SortNext, SortPrev  key.Binding
	Grid, Chart, Bubble key.Binding
	Up, Down            key.Binding
	PageUp, PageDown    key.Binding
	Reseed, Theme       key.Binding
	Help, Quit          key.Binding
}

var keys = keyMap{
	Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Blur:     key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
	SortNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "sort")),
	SortPrev: key.NewBinding(key.WithKeys("S")),
	Grid:     key.NewBinding(key.WithKeys("1", "g"), key.WithHelp("1/g", "grid")),
	Chart:    key.NewBinding(key.WithKeys("2", "c"), key.WithHelp("2/c", "chart")),
	Bubble:   key.NewBinding(key.WithKeys("3", "b"), key.WithHelp("3/b", "bubbles")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
	Reseed:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reseed")),
	Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.SortNext, k.Grid, k.Chart, k.Bubble, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur, k.SortNext},
		{k.Grid, k.Chart, k.Bubble},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Reseed, k.Theme, k.Help, k.Quit},
	}
}
