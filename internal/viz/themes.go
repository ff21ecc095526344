package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Error     lipgloss.Color
	Bar       lipgloss.Color
}

// Available themes
var (
	ThemeMarquee = Theme{
		Name:      "marquee",
		Primary:   lipgloss.Color("#f5c518"), // Marquee gold
		Secondary: lipgloss.Color("#e0e0e0"),
		Accent:    lipgloss.Color("#ff4f6d"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#777788"),
		Border:    lipgloss.Color("#444466"),
		Error:     lipgloss.Color("#ff4444"),
		Bar:       lipgloss.Color("#3498db"),
	}

	ThemeNoir = Theme{
		Name:      "noir",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#bbbbbb"),
		Accent:    lipgloss.Color("#888888"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#666666"),
		Border:    lipgloss.Color("#555555"),
		Error:     lipgloss.Color("#ff5555"),
		Bar:       lipgloss.Color("#cccccc"),
	}

	ThemeTechnicolor = Theme{
		Name:      "technicolor",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
		Error:     lipgloss.Color("#ff0000"),
		Bar:       lipgloss.Color("#00ccff"),
	}

	// Default theme
	CurrentTheme = ThemeMarquee

	// All available themes
	Themes = []Theme{
		ThemeMarquee,
		ThemeNoir,
		ThemeTechnicolor,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMarquee
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
