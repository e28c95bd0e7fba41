package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtui/virtui/internal/virsh"
)

// DomainPanel renders one domain as a bordered detail panel: the name
// on top, then the listing columns and the detail facts as aligned
// key-value rows.
type DomainPanel struct {
	Domain virsh.Domain
	Detail string // one "Key: value" fact per line
	Width  int    // Terminal width for responsive rendering
}

// NewDomainPanel creates a panel for the given domain
func NewDomainPanel(d virsh.Domain, detail string) *DomainPanel {
	return &DomainPanel{
		Domain: d,
		Detail: detail,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (p *DomainPanel) SetWidth(width int) *DomainPanel {
	p.Width = width
	return p
}

// Render returns the styled panel as a string
func (p *DomainPanel) Render() string {
	width := p.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	title := PanelTitleStyle.Render(p.Domain.Name)

	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", dividerWidth))

	rows := []string{
		panelRow("Id", p.Domain.ID),
		PanelKeyStyle.Render("State:") + " " + StateStyle(p.Domain.State).Render(p.Domain.State),
		panelRow("VCPUs", p.Domain.VCPUs),
		panelRow("Memory", p.Domain.Memory),
	}

	// Detail facts arrive as "Key: value" lines; anything else renders
	// verbatim
	for _, line := range strings.Split(strings.TrimRight(p.Detail, "\n"), "\n") {
		if line == "" {
			continue
		}
		if key, value, ok := strings.Cut(line, ": "); ok {
			rows = append(rows, panelRow(key, value))
		} else {
			rows = append(rows, PanelValueStyle.Render("  "+line))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, divider, strings.Join(rows, "\n"))
	return PanelBorderStyle(width).Render(content)
}

// String implements fmt.Stringer
func (p *DomainPanel) String() string {
	return p.Render()
}

func panelRow(key, value string) string {
	return PanelKeyStyle.Render(key+":") + " " + PanelValueStyle.Render(value)
}

// RenderDomainPanel is a convenience function to render a panel directly
func RenderDomainPanel(d virsh.Domain, detail string) string {
	return NewDomainPanel(d, detail).Render()
}
