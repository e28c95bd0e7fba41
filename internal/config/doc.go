// Package config provides user configuration management for virtui.
//
// This package manages a YAML-based configuration file holding the user's
// preferences: which control tool to invoke and with what connection URI,
// which remote shell to use for guest sessions, dashboard behavior, and
// logging. The configuration follows OS-specific conventions for storage
// location, and every field has a working default so the file is optional.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/virtui/config.yaml or $HOME/.config/virtui/config.yaml
//   - macOS: $HOME/.config/virtui/config.yaml
//   - Windows: %LOCALAPPDATA%\virtui\config.yaml
//
// # Usage Example
//
//	// Load the global settings (defaults when no file exists)
//	settings, err := config.Load()
//	if err != nil {
//	    return err
//	}
//
//	// Adjust and persist atomically
//	settings.Dashboard.ShowInactive = true
//	if err := settings.Save(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
