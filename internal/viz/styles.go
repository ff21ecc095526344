package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles is the set of lipgloss styles the dashboard draws with.
type Styles struct {
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardField   lipgloss.Style
	CardRevenue lipgloss.Style
	Tooltip     lipgloss.Style
	ErrorBanner lipgloss.Style
	Subtle      lipgloss.Style
	KeyHint     lipgloss.Style
}

// Styles derives the style set from t.
func (t Theme) Styles() Styles {
	return Styles{
		StatLabel: lipgloss.NewStyle().
			Foreground(t.Muted),
		StatValue: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Tab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			Background(t.Accent).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		CardField: lipgloss.NewStyle().
			Foreground(t.Secondary),
		CardRevenue: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Tooltip: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Accent).
			Foreground(t.Text).
			Padding(0, 1),
		ErrorBanner: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Error).
			Padding(0, 1),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// GradientText colors each rune of text along a Lab blend from start to end.
// Unparseable colors leave the text plain.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err1 := colorful.Hex(string(start))
	to, err2 := colorful.Hex(string(end))
	if err1 != nil || err2 != nil {
		return text
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// Separator draws a muted rule of the given width.
func (s Styles) Separator(width int) string {
	if width < 7 {
		return s.Subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
