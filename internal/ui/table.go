package ui

import (
	"strings"

	"github.com/virtui/virtui/internal/virsh"
)

// Column layout for domain listings. Name grows to fit; the rest are
// fixed.
const (
	idColWidth   = 6
	minNameWidth = 20
	vcpuColWidth = 7
	memColWidth  = 12
)

// RenderDomainTable renders the inventory as an aligned listing, one
// domain per line with its state colored.
func RenderDomainTable(domains []virsh.Domain) string {
	if len(domains) == 0 {
		return EmptyNoticeStyle.Render("No domains found.")
	}

	nameWidth := minNameWidth
	for _, d := range domains {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(
		padRight("Id", idColWidth) + " " +
			padRight("Name", nameWidth) + " " +
			padRight("VCPUs", vcpuColWidth) + " " +
			padRight("Memory", memColWidth) + " " +
			"State"))

	for _, d := range domains {
		b.WriteString("\n")
		b.WriteString(padRight(d.ID, idColWidth) + " " +
			padRight(d.Name, nameWidth) + " " +
			padRight(d.VCPUs, vcpuColWidth) + " " +
			padRight(d.Memory, memColWidth) + " " +
			StateStyle(d.State).Render(d.State))
	}
	return b.String()
}

// padRight fits s into width columns, truncating with an ellipsis when
// needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
