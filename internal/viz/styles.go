package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles holds the lipgloss styles for one theme. Rebuilt whenever
// the user cycles themes.
type styles struct {
	header lipgloss.Style
	panel  lipgloss.Style
	canvas lipgloss.Style

	label lipgloss.Style
	value lipgloss.Style
	graph lipgloss.Style

	running  lipgloss.Style
	paused   lipgloss.Style
	collided lipgloss.Style

	safe   lipgloss.Style
	warn   lipgloss.Style
	danger lipgloss.Style

	help lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),

		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),

		canvas: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary),

		label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(10),

		value: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),

		graph: lipgloss.NewStyle().
			Foreground(t.Accent),

		running: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),

		paused: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Warning),

		collided: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),

		safe:   lipgloss.NewStyle().Foreground(t.Success),
		warn:   lipgloss.NewStyle().Foreground(t.Warning),
		danger: lipgloss.NewStyle().Foreground(t.Error),

		help: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// readingBar renders a fill bar for one sensor reading, percent in
// [0, 1].
func readingBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
