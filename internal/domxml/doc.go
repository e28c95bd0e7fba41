// Package domxml summarizes libvirt domain descriptors.
//
// A descriptor is whatever "virsh dumpxml" printed: usually a complete
// well-formed document, occasionally truncated or mangled in transit.
// The parser therefore makes no whole-document model. It streams tokens
// with encoding/xml in non-strict mode, tracks the open element path on
// a small stack, and accumulates exactly the handful of facts the
// dashboard shows:
//
//   - vcpu count and memory size, normalized to MiB
//   - networks the interfaces attach to
//   - a compact field list per interface element
//   - the emulator binary
//   - disk devices as "target: source" pairs (cdroms excluded)
//
// The first token error ends the walk and whatever was accumulated up
// to that point stands. Nothing here validates the descriptor; a junk
// input just renders as "N/A" everywhere.
package domxml
