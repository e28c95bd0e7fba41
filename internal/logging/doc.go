// Package logging provides structured logging for virtui.
//
// This package wraps a zap logger with convenience functions for common
// logging patterns used throughout the application. The dashboard draws
// the whole terminal, so unlike a typical CLI the logger writes to a file
// rather than stdout; tailing that file in a second terminal is the way
// to watch virtui work.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (command argv, output sizes, timings)
//   - Info: Normal operations (refreshes, sessions, lifecycle actions)
//   - Warn: Non-fatal issues (failed address sources, missing descriptors)
//   - Error: Fatal issues (startup failures, unusable list output)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("domain list refreshed",
//	    zap.Int("count", 12),
//	    zap.Bool("include_inactive", true),
//	)
//
// # Configuration
//
// Initialize logging at startup and flush on the way out:
//
//	if err := logging.Initialize("debug", "virtui.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// An empty level leaves the logger silent. The VIRTUI_LOG_LEVEL
// environment variable overrides whatever level was configured.
//
// # Output Format
//
// Entries are written in console format with ISO8601 timestamps and plain
// capitalized levels, so the file stays readable without a pager that
// understands color escapes:
//
//	2025-11-25T10:30:45.123-0800  INFO  domain list refreshed
//	  count=12
//	  include_inactive=true
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
