// Package ui provides terminal output components for the virtui
// subcommands.
//
// This package uses Lipgloss to render styled output for the run-once
// command surface. Unlike the interactive dashboard in internal/tui,
// these components render and exit; they never take over the terminal.
//
// # Components
//
// The package provides four main component types:
//
//   - RenderDomainTable: aligned inventory listing for `virtui list`
//   - DomainPanel: bordered detail panel for `virtui show`
//   - Result: success/failure boxes for lifecycle commands
//   - Confirm: yes/no prompt guarding start and shutdown
//
// Renderers return strings so commands decide where output goes and
// tests can assert on it without a terminal.
//
// # Logging Integration
//
// Log output never shares the terminal with these components: the zap
// logger writes to a file, with VIRTUI_LOG_LEVEL overriding the
// configured verbosity. The curated output here stays clean at any log
// level.
package ui
