package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/filmdash/internal/catalog"
	"github.com/san-kum/filmdash/internal/format"
	"github.com/san-kum/filmdash/internal/layout"
	"github.com/san-kum/filmdash/internal/viz"
)

// frameMsg asks for one relaxation step of the run identified by token.
type frameMsg struct {
	token layout.Token
}

// bubblePane runs the bubble layout one step per frame and draws it on a
// braille canvas. Pointer coordinates are pane cells.
type bubblePane struct {
	animator   *layout.Animator
	base       viz.Projection
	proj       viz.Projection
	fps        int
	cols, rows int
	scheduled  layout.Token

	pointer    layout.Point
	hasPointer bool
}

func newBubblePane(a *layout.Animator, proj viz.Projection, fps, cols, rows int) *bubblePane {
	return &bubblePane{animator: a, base: proj, proj: proj, fps: max(fps, 1), cols: cols, rows: rows}
}

// Render starts a fresh run, zoomed out as far as films need; any frame
// still queued for the previous run carries a stale token and is dropped.
func (p *bubblePane) Render(films []catalog.Film) error {
	p.proj = p.base.Fit(films, p.animator.Params(), p.cols, p.rows)
	p.animator.Start(films, p.proj.Bounds(p.cols, p.rows))
	return nil
}

// Release stops the run and forgets the pointer.
func (p *bubblePane) Release() {
	p.animator.Cancel()
	p.hasPointer = false
}

func (p *bubblePane) SetSize(cols, rows int) {
	p.cols, p.rows = max(cols, 1), max(rows, 1)
}

// schedule returns the first frame of a run that has not been scheduled yet.
func (p *bubblePane) schedule() tea.Cmd {
	tok := p.animator.Token()
	if !p.animator.Running() || p.scheduled == tok {
		return nil
	}
	p.scheduled = tok
	return p.tick(tok)
}

// frame steps the run and returns the next frame while it is unsettled.
func (p *bubblePane) frame(tok layout.Token) tea.Cmd {
	if !p.animator.Frame(tok) {
		return nil
	}
	return p.tick(tok)
}

func (p *bubblePane) tick(tok layout.Token) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(time.Time) tea.Msg {
		return frameMsg{token: tok}
	})
}

// hover records the pointer; off-pane positions clear it.
func (p *bubblePane) hover(col, row int) {
	if col < 0 || row < 0 || col >= p.cols || row >= p.rows {
		p.hasPointer = false
		return
	}
	p.pointer = layout.Point{X: float64(col), Y: float64(row)}
	p.hasPointer = true
}

// hovered is the index of the bubble under the pointer.
func (p *bubblePane) hovered() (int, bool) {
	l := p.animator.Layout()
	if l == nil || !p.hasPointer {
		return -1, false
	}
	pt := p.proj.Point(int(p.pointer.X), int(p.pointer.Y))
	return l.HitTest(pt.X, pt.Y)
}

func (p *bubblePane) status() string {
	l := p.animator.Layout()
	switch {
	case l == nil:
		return ""
	case p.animator.Running():
		return fmt.Sprintf("%s settling, %d steps", viz.AnimatedSpinner(l.Iterations()), l.Iterations())
	case p.animator.HitCap():
		return fmt.Sprintf("stopped at %d steps", l.Iterations())
	default:
		return fmt.Sprintf("settled after %d steps", l.Iterations())
	}
}

func (p *bubblePane) View(s viz.Styles, accent string) string {
	l := p.animator.Layout()
	if l == nil || l.Len() == 0 {
		return s.Subtle.Render("no films match")
	}

	c := viz.NewCanvas(p.cols, p.rows)
	idx, ok := p.hovered()
	viz.DrawBubbles(c, l, p.proj, idx, accent)
	if ok {
		b, _ := l.Bubble(idx)
		p.drawTooltip(c, b.Film, s.Tooltip)
	}
	return c.Render()
}

// drawTooltip boxes f's details with st's border, padding and colors near
// the pointer, clamped inside the pane.
func (p *bubblePane) drawTooltip(c *viz.Canvas, f catalog.Film, st lipgloss.Style) {
	lines := tooltipLines(f)
	w, h := tooltipSize(lines, st)
	pane := layout.Size{W: float64(p.cols), H: float64(p.rows)}
	pos := layout.TooltipPosition(p.pointer, pane, layout.Size{W: float64(w), H: float64(h)}, 2, 1)
	col, row := int(pos.X), int(pos.Y)

	inner := w - 2
	border := st.GetBorderStyle()
	edge, text := colorOf(st.GetBorderTopForeground()), colorOf(st.GetForeground())

	c.Text(col, row, border.TopLeft+strings.Repeat(border.Top, inner)+border.TopRight, edge)
	for i, l := range lines {
		r := row + 1 + i
		c.Text(col, r, border.Left, edge)
		pad := inner - st.GetPaddingLeft() - len([]rune(l))
		c.Text(col+1, r, strings.Repeat(" ", st.GetPaddingLeft())+l+strings.Repeat(" ", max(pad, 0)), text)
		c.Text(col+1+inner, r, border.Right, edge)
	}
	c.Text(col, row+h-1, border.BottomLeft+strings.Repeat(border.Bottom, inner)+border.BottomRight, edge)
}

// tooltipSize is the boxed size of lines in cells, borders included.
func tooltipSize(lines []string, st lipgloss.Style) (int, int) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	return width + st.GetHorizontalPadding() + 2, len(lines) + 2
}

func colorOf(c lipgloss.TerminalColor) string {
	if s, ok := c.(lipgloss.Color); ok {
		return string(s)
	}
	return ""
}

func tooltipLines(f catalog.Film) []string {
	return []string{
		f.Title,
		"Director: " + f.Director,
		"Year: " + f.ReleaseYear,
		"Box office: " + format.BoxOffice(f.BoxOffice),
	}
}
