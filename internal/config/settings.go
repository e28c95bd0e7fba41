package config

import "time"

// Settings represents the entire user configuration file.
// Everything here has a working default; a missing file is not an error.
type Settings struct {
	Version    int              `yaml:"version"`
	Hypervisor HypervisorConfig `yaml:"hypervisor,omitempty"`
	SSH        SSHConfig        `yaml:"ssh,omitempty"`
	Dashboard  DashboardConfig  `yaml:"dashboard,omitempty"`
	Log        LogConfig        `yaml:"log,omitempty"`
}

// HypervisorConfig selects the control tool and its connection.
type HypervisorConfig struct {
	Binary  string `yaml:"binary,omitempty"`  // Control tool executable (default "virsh", resolved via PATH)
	Connect string `yaml:"connect,omitempty"` // Connection URI passed as "-c <uri>"; empty uses the tool's default
}

// SSHConfig selects the remote shell used for guest sessions.
type SSHConfig struct {
	Binary string `yaml:"binary,omitempty"` // Remote shell executable (default "ssh")
}

// DashboardConfig holds interactive dashboard preferences.
type DashboardConfig struct {
	RefreshSeconds int  `yaml:"refresh_seconds,omitempty"` // Seconds between inventory refreshes
	ShowInactive   bool `yaml:"show_inactive,omitempty"`   // Include inactive domains at startup
}

// LogConfig controls the file sink.
// An empty level disables logging entirely.
type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`  // Log file path (default "virtui.log" in the working directory)
}

// NewSettings creates Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Hypervisor: HypervisorConfig{
			Binary: "virsh",
		},
		SSH: SSHConfig{
			Binary: "ssh",
		},
		Dashboard: DashboardConfig{
			RefreshSeconds: 3,
		},
		Log: LogConfig{
			Level: "info",
			File:  "virtui.log",
		},
	}
}

// RefreshInterval returns the dashboard refresh period, guarding against
// zero or negative values from a hand-edited file.
func (s *Settings) RefreshInterval() time.Duration {
	if s.Dashboard.RefreshSeconds <= 0 {
		return 3 * time.Second
	}
	return time.Duration(s.Dashboard.RefreshSeconds) * time.Second
}

// applyDefaults fills fields a hand-edited file may have left empty.
func (s *Settings) applyDefaults() {
	if s.Hypervisor.Binary == "" {
		s.Hypervisor.Binary = "virsh"
	}
	if s.SSH.Binary == "" {
		s.SSH.Binary = "ssh"
	}
	if s.Dashboard.RefreshSeconds <= 0 {
		s.Dashboard.RefreshSeconds = 3
	}
	if s.Log.File == "" {
		s.Log.File = "virtui.log"
	}
}
