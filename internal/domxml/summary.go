package domxml

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resources holds the counts pulled from a domain descriptor.
// Empty fields mean the descriptor had no usable value.
type Resources struct {
	VCPUs  string
	Memory string // normalized, e.g. "2048 MiB"
}

// Summary is the device overview assembled from one descriptor pass.
type Summary struct {
	Networks   []string
	Interfaces []string
	Emulator   string
	Disks      []string
}

// Render returns the four-line overview with "N/A" standing in for
// anything the descriptor did not provide.
func (s Summary) Render() string {
	var b strings.Builder
	b.WriteString("Network: " + orNA(strings.Join(s.Networks, ", ")) + "\n")
	b.WriteString("Interfaces: " + orNA(strings.Join(s.Interfaces, "; ")) + "\n")
	b.WriteString("Emulator: " + orNA(s.Emulator) + "\n")
	b.WriteString("Disks: " + orNA(strings.Join(s.Disks, ", ")))
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// addressNoise is the attribute set never recorded from address
// elements: PCI placement detail that would drown the useful fields.
var addressNoise = map[string]bool{
	"type":     true,
	"domain":   true,
	"bus":      true,
	"slot":     true,
	"function": true,
}

// ifaceAccum collects one interface element while the walk is inside it.
type ifaceAccum struct {
	depth  int // stack depth of the interface element itself
	fields []string
	seen   map[string]bool
}

// add records one "field=value" descriptor, keeping first positions.
func (a *ifaceAccum) add(field string) {
	if a.seen[field] {
		return
	}
	a.seen[field] = true
	a.fields = append(a.fields, field)
}

// diskAccum collects one disk element while the walk is inside it.
type diskAccum struct {
	depth     int
	qualifies bool // device attribute was "disk"; cdroms and floppies do not count
	target    string
	source    string
}

// Parse extracts resources and the device summary from a domain
// descriptor in a single streaming pass.
//
// The walk is best effort: descriptors come from whatever virsh
// printed, so the decoder runs in non-strict mode and the first token
// error simply ends the walk, keeping everything accumulated up to
// that point. A descriptor that yields nothing produces empty
// Resources and a Summary that renders as all "N/A".
func Parse(descriptor string) (Resources, Summary) {
	dec := xml.NewDecoder(strings.NewReader(descriptor))
	dec.Strict = false

	var (
		res Resources
		sum Summary

		// Open element names, innermost last. Non-strict decoding
		// still balances start and end tokens, so plain push and pop
		// stays in sync.
		stack []string

		iface *ifaceAccum
		disk  *diskAccum

		memRaw   string
		memUnit  string
		seenNets = map[string]bool{}
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			stack = append(stack, name)

			switch name {
			case "memory":
				// The unit belongs to the element whose text gets
				// captured, so track it per element until then.
				if memRaw == "" {
					memUnit = attr(t, "unit")
				}
			case "interface":
				iface = &ifaceAccum{depth: len(stack), seen: map[string]bool{}}
				for _, a := range t.Attr {
					iface.add(a.Name.Local + "=" + a.Value)
				}
			case "disk":
				disk = &diskAccum{depth: len(stack), qualifies: attr(t, "device") == "disk"}
			}

			// Elements inside an open interface
			if iface != nil && len(stack) > iface.depth {
				if name == "source" {
					for _, key := range []string{"network", "bridge", "dev"} {
						if v := attr(t, key); v != "" && !seenNets[v] {
							seenNets[v] = true
							sum.Networks = append(sum.Networks, v)
						}
					}
				}
				for _, a := range t.Attr {
					if name == "address" && addressNoise[a.Name.Local] {
						continue
					}
					iface.add(name + "." + a.Name.Local + "=" + a.Value)
				}
			}

			// Elements inside an open disk
			if disk != nil && len(stack) > disk.depth {
				switch name {
				case "target":
					if disk.target == "" {
						disk.target = attr(t, "dev")
					}
				case "source":
					if disk.source == "" {
						for _, key := range []string{"file", "dev", "name", "volume", "path"} {
							if v := attr(t, key); v != "" {
								disk.source = v
								break
							}
						}
					}
				}
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

			switch t.Name.Local {
			case "interface":
				if iface != nil && len(stack) < iface.depth {
					sum.Interfaces = append(sum.Interfaces, orNA(strings.Join(iface.fields, ", ")))
					iface = nil
				}
			case "disk":
				if disk != nil && len(stack) < disk.depth {
					if disk.qualifies {
						sum.Disks = append(sum.Disks, fmt.Sprintf("%s: %s",
							orUnknown(disk.target), orUnknown(disk.source)))
					}
					disk = nil
				}
			case "memory":
				// Element closed without usable text; forget its unit
				if memRaw == "" {
					memUnit = ""
				}
			}

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" || len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]

			switch parent {
			case "vcpu":
				if res.VCPUs == "" {
					res.VCPUs = text
				}
			case "memory":
				if memRaw == "" {
					memRaw = text
				}
			case "emulator":
				if sum.Emulator == "" {
					sum.Emulator = text
				}
			}

			// Text directly inside a child of an open interface
			if iface != nil && len(stack) > iface.depth {
				iface.add(parent + "=" + text)
			}
		}
	}

	if memRaw != "" {
		if mib, ok := toMiB(memRaw, memUnit); ok {
			res.Memory = formatMiB(mib)
		}
	}

	return res, sum
}

// attr returns the value of the named attribute, or "" when absent.
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// toMiB normalizes a raw memory value to mebibytes. The unit set matches
// what descriptors actually carry; anything else yields no value rather
// than a wrong one. An absent unit means KiB.
func toMiB(raw, unit string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}

	if unit == "" {
		unit = "KiB"
	}

	switch unit {
	case "KiB":
		return v / 1024, true
	case "MiB":
		return v, true
	case "GiB":
		return v * 1024, true
	case "b", "byte", "bytes":
		return v / (1024 * 1024), true
	default:
		return 0, false
	}
}

// formatMiB renders a mebibyte count, dropping the fraction when it is
// negligible.
func formatMiB(v float64) string {
	frac := v - math.Trunc(v)
	if math.Abs(frac) < 0.01 {
		return fmt.Sprintf("%.0f MiB", v)
	}
	return fmt.Sprintf("%.1f MiB", v)
}
