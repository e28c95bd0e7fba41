package virsh

import "strings"

// Domain is one row of the inventory. Identity and state come from the
// list output; VCPUs and Memory keep their "N/A" defaults until enriched
// from the domain's XML descriptor.
type Domain struct {
	ID     string // "-" for inactive domains
	Name   string
	State  string // free text, multi-word states preserved ("shut off")
	VCPUs  string
	Memory string
}

// Running reports whether the domain can accept console or SSH sessions.
func (d Domain) Running() bool {
	return d.State == "running"
}

// ShutOff reports whether the domain is powered off and eligible to start.
func (d Domain) ShutOff() bool {
	return d.State == "shut off"
}

// ParseList converts the tabular output of the list subcommand into
// domains.
//
// Example input:
//
//	 Id   Name    State
//	----------------------
//	 1    vm1     running
//	 -    vm2     shut off
//
// The first two lines are always the header and separator, so they are
// skipped without inspection. A row needs at least three whitespace
// separated tokens: id, name, and the state, which keeps every remaining
// token so multi-word states survive. Shorter rows are dropped silently.
// Zero rows is a valid result.
func ParseList(out string) []Domain {
	lines := strings.Split(out, "\n")
	if len(lines) <= 2 {
		return nil
	}

	var domains []Domain
	for _, line := range lines[2:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Trim(trimmed, "-") == "" {
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 3 {
			continue
		}

		domains = append(domains, Domain{
			ID:     fields[0],
			Name:   fields[1],
			State:  strings.Join(fields[2:], " "),
			VCPUs:  "N/A",
			Memory: "N/A",
		})
	}

	return domains
}
