// Package tui implements the interactive dashboard.
//
// The dashboard follows the bubbletea architecture: an immutable-ish
// Model value, an Update function that is the only place state changes,
// and a View function that renders whatever the model currently says.
// Anything slow (refreshing the inventory, resolving addresses,
// running lifecycle commands) happens in commands off the update loop
// and comes back as a message.
//
// # Interaction Modes
//
// Key handling is governed by a small closed set of modes:
//
//   - browse: navigate the table, trigger actions
//   - confirm: a pending start or shutdown awaits y/n
//   - ssh user: a text input collects the username for a session
//
// Each modal mode carries the domain it was opened for, so inventory
// refreshes can move the cursor without retargeting a pending action.
//
// # Terminal Handoff
//
// Console and SSH sessions need the real terminal. The dashboard
// suspends itself around the child process and resumes when it exits;
// from the operator's point of view the session simply replaces the
// dashboard until they leave it.
//
// # Refresh Loop
//
// A timer refreshes the inventory periodically while browsing. Refresh
// failures after startup are fatal: the dashboard quits and the process
// exits nonzero, because a dashboard with no inventory has nothing left
// to show. Everything else (a domain without addresses, a descriptor
// that will not parse) degrades to "N/A" and is logged.
package tui
