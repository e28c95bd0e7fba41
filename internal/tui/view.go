package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/virtui/virtui/internal/virsh"
)

// Column layout. The name column grows with the inventory; the rest are
// fixed.
const (
	idColWidth    = 6
	minNameWidth  = 20
	vcpuColWidth  = 7
	memColWidth   = 12
	stateColWidth = 15
)

// Lines of chrome around the table: title, header, detail panel, and the
// footer at its tallest (the prompt box).
const chromeHeight = 12

// View renders the dashboard.
func (m Model) View() string {
	sections := []string{
		m.renderTitle(),
		m.renderTable(),
		m.renderDetail(),
		m.renderFooter(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	title := titleStyle.Render("Virtual Machines")

	var note strings.Builder
	if len(m.domains) > 0 {
		fmt.Fprintf(&note, "%d of %d", m.cursor+1, len(m.domains))
	}
	if m.showInactive {
		if note.Len() > 0 {
			note.WriteString(" • ")
		}
		note.WriteString("inactive shown")
	}
	if note.Len() == 0 {
		return title
	}
	return title + countStyle.Render(note.String())
}

func (m Model) renderTable() string {
	if len(m.domains) == 0 {
		return countStyle.Render("   No domains found.")
	}

	nameWidth := minNameWidth
	for _, d := range m.domains {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	var b strings.Builder
	b.WriteString("   " + headerStyle.Render(
		pad("Id", idColWidth)+" "+
			pad("Name", nameWidth)+" "+
			pad("VCPUs", vcpuColWidth)+" "+
			pad("Memory", memColWidth)+" "+
			pad("State", stateColWidth)))

	start, end := m.visibleRows()
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(m.domains[i], i == m.cursor, nameWidth))
	}
	return b.String()
}

// visibleRows returns the half-open row range that fits the terminal,
// keeping the cursor inside it.
func (m Model) visibleRows() (int, int) {
	total := len(m.domains)
	if m.height == 0 {
		// No size report yet; render everything
		return 0, total
	}

	visible := m.height - chromeHeight
	if visible < 3 {
		visible = 3
	}
	if visible >= total {
		return 0, total
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	return start, start + visible
}

// renderRow renders one domain. Cells are styled individually so the
// selection reversal and the state color never nest.
func (m Model) renderRow(d virsh.Domain, selected bool, nameWidth int) string {
	prefix := "   "
	base := lipgloss.NewStyle()
	if selected {
		prefix = ">> "
		base = base.Reverse(true)
	}

	st := stateStyle(d.State)
	if selected {
		st = st.Reverse(true)
	}

	return prefix +
		base.Render(pad(d.ID, idColWidth)) + " " +
		base.Render(pad(d.Name, nameWidth)) + " " +
		base.Render(pad(d.VCPUs, vcpuColWidth)) + " " +
		base.Render(pad(d.Memory, memColWidth)) + " " +
		st.Render(pad(d.State, stateColWidth))
}

func (m Model) renderDetail() string {
	name, ok := m.selectedName()
	if !ok {
		return detailStyle.Render("No domain selected")
	}
	if m.detail.name != name {
		return detailStyle.Render(m.spin.View() + " Gathering details for " + name)
	}
	return detailStyle.Render(m.detail.text)
}

func (m Model) renderFooter() string {
	switch mode := m.mode.(type) {
	case modeConfirm:
		return promptStyle.Render(fmt.Sprintf("%s %s? (y: confirm, n: cancel)",
			mode.action.Title(), mode.name))

	case modeSSHUser:
		return promptStyle.Render(fmt.Sprintf("SSH user for %s (%s)\n%s\n%s",
			mode.name, mode.ip, m.input.View(),
			helpStyle.Render("enter: connect • esc: cancel")))

	default:
		footer := m.help.View(m.keys)
		if m.status != "" {
			footer = statusStyle.Render(m.status) + "\n" + footer
		}
		return footer
	}
}

// pad fits s into width columns, truncating with an ellipsis when
// needed.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
