package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/viz"
)

const cardWidth = 34

// gridPane lays films out as cards in rows that fit the pane width.
type gridPane struct {
	viewport viewport.Model
	styles   *viz.Styles
	films    []catalog.Film
}

func newGridPane(styles *viz.Styles, w, h int) *gridPane {
	return &gridPane{viewport: viewport.New(w, h), styles: styles}
}

func (g *gridPane) Render(films []catalog.Film) error {
	g.films = films
	g.viewport.SetContent(g.content())
	g.viewport.GotoTop()
	return nil
}

func (g *gridPane) SetSize(w, h int) {
	g.viewport.Width = w
	g.viewport.Height = h
	g.viewport.SetContent(g.content())
}

func (g *gridPane) View() string { return g.viewport.View() }

func (g *gridPane) content() string {
	if len(g.films) == 0 {
		return g.styles.Subtle.Render("no films match")
	}

	perRow := max(1, g.viewport.Width/cardWidth)
	var rows []string
	for start := 0; start < len(g.films); start += perRow {
		end := min(start+perRow, len(g.films))
		cards := make([]string, 0, end-start)
		for _, f := range g.films[start:end] {
			cards = append(cards, g.card(f))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *gridPane) card(f catalog.Film) string {
	inner := uint(cardWidth - 4)
	field := func(label, value string) string {
		return g.styles.StatLabel.Render(label+" ") +
			g.styles.CardField.Render(truncate.StringWithTail(value, inner-uint(len(label)+1), "..."))
	}

	lines := []string{
		g.styles.CardTitle.Render(truncate.StringWithTail(f.Title, inner, "...")),
		field("Director:", f.Director),
		field("Year:", f.ReleaseYear),
		field("Country:", f.CountryOfOrigin),
		g.styles.CardRevenue.Render(format.BoxOffice(f.BoxOffice)),
	}
	return g.styles.Card.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}
