package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines a color scheme for the live view. Success, Warning
// and Error double as the sensor zone colors: clear, closing in, and
// inside braking range.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

// Available themes
var (
	ThemeDefault = Theme{
		Name:      "default",
		Primary:   lipgloss.Color("#0096ff"), // Car blue
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#eeeeee"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#aaaaaa"),
		Warning:   lipgloss.Color("#dddddd"),
		Error:     lipgloss.Color("#ffffff"),
	}

	ThemeNeon = Theme{
		Name:      "neon",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#00ffff"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4757"),
	}

	// All available themes, in cycle order
	Themes = []Theme{
		ThemeDefault,
		ThemeMono,
		ThemeNeon,
	}
)

// GetTheme returns a theme by name, falling back to the default
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
