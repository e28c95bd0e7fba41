package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for subcommand output
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, prompts
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Domain states map onto the terminal's own green, red, and yellow so
// listings match what operators see in every other tool.
var (
	stateRunningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	stateShutOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statePausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	stateDefaultStyle = lipgloss.NewStyle()
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
)

// Shared styles for subcommand output
var (
	// TableHeaderStyle is for the column header row of domain listings
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true)

	// EmptyNoticeStyle is for "nothing to show" lines
	EmptyNoticeStyle = lipgloss.NewStyle().
				Foreground(MutedColor)

	// PanelTitleStyle is for the domain name atop a detail panel
	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true).
			PaddingLeft(2)

	// PanelKeyStyle is for detail keys (e.g., "Memory:")
	PanelKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2).
			Width(15)

	// PanelValueStyle is for detail values
	PanelValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// TroubleshootingTitleStyle is for "Troubleshooting:" headers
	TroubleshootingTitleStyle = lipgloss.NewStyle().
					Foreground(MutedColor).
					Bold(true)

	// TroubleshootingItemStyle is for troubleshooting bullet points
	TroubleshootingItemStyle = lipgloss.NewStyle().
					Foreground(MutedColor)

	// PromptStyle is for confirmation prompts
	PromptStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// CancelStyle is for cancellation notices
	CancelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// StateStyle returns the style for a domain state: green running, red
// shut off, yellow paused, unstyled otherwise.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case "running":
		return stateRunningStyle
	case "shut off":
		return stateShutOffStyle
	case "paused":
		return statePausedStyle
	default:
		return stateDefaultStyle
	}
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// IsInteractive reports whether stdout is attached to a terminal. The
// dashboard refuses to start when it is not.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// PanelBorderStyle returns the border style for detail panels
func PanelBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2) // Account for border characters
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width - 2).
		Padding(0, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width - 2).
		Padding(0, 2)
}

// TroubleshootingBoxStyle returns the border style for troubleshooting sections
func TroubleshootingBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width - 12). // Indented within error box
		Padding(0, 1).
		MarginLeft(3)
}
