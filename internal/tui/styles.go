package tui

import "github.com/charmbracelet/lipgloss"

// Color palette. Chrome uses the application colors; domain states map
// onto the terminal's own green, red, and yellow so they match what
// operators see everywhere else.
var (
	PrimaryColor = lipgloss.Color("#7D56F4")
	SubtleColor  = lipgloss.Color("#626262")
	WarningColor = lipgloss.Color("#FFA500")

	RunningColor = lipgloss.Color("2")
	ShutOffColor = lipgloss.Color("1")
	PausedColor  = lipgloss.Color("3")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	runningStyle = lipgloss.NewStyle().Foreground(RunningColor)
	shutOffStyle = lipgloss.NewStyle().Foreground(ShutOffColor)
	pausedStyle  = lipgloss.NewStyle().Foreground(PausedColor)
	defaultStyle = lipgloss.NewStyle()

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// stateStyle returns the style for one state cell: green running, red
// shut off, yellow paused, unstyled otherwise.
func stateStyle(state string) lipgloss.Style {
	switch state {
	case "running":
		return runningStyle
	case "shut off":
		return shutOffStyle
	case "paused":
		return pausedStyle
	default:
		return defaultStyle
	}
}
