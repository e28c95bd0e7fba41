package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	// Should not be empty
	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	// Should contain "virtui"
	if !strings.Contains(configDir, "virtui") {
		t.Errorf("GetConfigDir() = %v, should contain 'virtui'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	// Should end with config.yaml
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	t.Logf("Config path: %s", configPath)
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}

	if s.Hypervisor.Binary != "virsh" {
		t.Errorf("NewSettings().Hypervisor.Binary = %v, want 'virsh'", s.Hypervisor.Binary)
	}

	if s.Hypervisor.Connect != "" {
		t.Errorf("NewSettings().Hypervisor.Connect = %v, want empty", s.Hypervisor.Connect)
	}

	if s.SSH.Binary != "ssh" {
		t.Errorf("NewSettings().SSH.Binary = %v, want 'ssh'", s.SSH.Binary)
	}

	if s.Dashboard.RefreshSeconds != 3 {
		t.Errorf("NewSettings().Dashboard.RefreshSeconds = %v, want 3", s.Dashboard.RefreshSeconds)
	}

	if s.Dashboard.ShowInactive {
		t.Error("NewSettings().Dashboard.ShowInactive should be false by default")
	}

	if s.Log.Level != "info" {
		t.Errorf("NewSettings().Log.Level = %v, want 'info'", s.Log.Level)
	}
}

func TestRefreshInterval(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"default", 3, 3 * time.Second},
		{"custom", 10, 10 * time.Second},
		{"zero falls back", 0, 3 * time.Second},
		{"negative falls back", -5, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSettings()
			s.Dashboard.RefreshSeconds = tt.seconds
			if got := s.RefreshInterval(); got != tt.want {
				t.Errorf("RefreshInterval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := loadFrom(filepath.Join(tmpDir, "config.yaml"))
	if err != nil {
		t.Fatalf("loadFrom() on missing file error = %v", err)
	}

	// Missing file yields defaults
	if s.Hypervisor.Binary != "virsh" {
		t.Errorf("Hypervisor.Binary = %v, want 'virsh'", s.Hypervisor.Binary)
	}
	if s.Dashboard.RefreshSeconds != 3 {
		t.Errorf("Dashboard.RefreshSeconds = %v, want 3", s.Dashboard.RefreshSeconds)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `version: 1
hypervisor:
  binary: /usr/local/bin/virsh
  connect: qemu+ssh://host/system
ssh:
  binary: mosh
dashboard:
  refresh_seconds: 5
  show_inactive: true
log:
  level: debug
  file: /tmp/virtui-test.log
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	s, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if s.Hypervisor.Binary != "/usr/local/bin/virsh" {
		t.Errorf("Hypervisor.Binary = %v, want '/usr/local/bin/virsh'", s.Hypervisor.Binary)
	}
	if s.Hypervisor.Connect != "qemu+ssh://host/system" {
		t.Errorf("Hypervisor.Connect = %v, want 'qemu+ssh://host/system'", s.Hypervisor.Connect)
	}
	if s.SSH.Binary != "mosh" {
		t.Errorf("SSH.Binary = %v, want 'mosh'", s.SSH.Binary)
	}
	if s.Dashboard.RefreshSeconds != 5 {
		t.Errorf("Dashboard.RefreshSeconds = %v, want 5", s.Dashboard.RefreshSeconds)
	}
	if !s.Dashboard.ShowInactive {
		t.Error("Dashboard.ShowInactive should be true")
	}
	if s.Log.Level != "debug" {
		t.Errorf("Log.Level = %v, want 'debug'", s.Log.Level)
	}
}

func TestLoadFromPartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	// Only the version is present; everything else should be defaulted
	content := `version: 1
hypervisor:
  connect: lxc:///
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	s, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if s.Hypervisor.Binary != "virsh" {
		t.Errorf("Hypervisor.Binary = %v, want defaulted 'virsh'", s.Hypervisor.Binary)
	}
	if s.Hypervisor.Connect != "lxc:///" {
		t.Errorf("Hypervisor.Connect = %v, want 'lxc:///'", s.Hypervisor.Connect)
	}
	if s.SSH.Binary != "ssh" {
		t.Errorf("SSH.Binary = %v, want defaulted 'ssh'", s.SSH.Binary)
	}
	if s.Dashboard.RefreshSeconds != 3 {
		t.Errorf("Dashboard.RefreshSeconds = %v, want defaulted 3", s.Dashboard.RefreshSeconds)
	}
	if s.Log.File != "virtui.log" {
		t.Errorf("Log.File = %v, want defaulted 'virtui.log'", s.Log.File)
	}
}

func TestLoadFromRejectsUnknownVersion(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom() should reject unsupported config version")
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("version: [unclosed\n"), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Error("loadFrom() should reject malformed YAML")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	s := NewSettings()
	s.Hypervisor.Connect = "qemu:///session"
	s.Dashboard.RefreshSeconds = 7
	s.Dashboard.ShowInactive = true
	s.Log.Level = "warn"

	if err := s.saveTo(path); err != nil {
		t.Fatalf("saveTo() error = %v", err)
	}

	// The saved file carries the explanatory header
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Virtui Configuration File") {
		t.Error("Saved config should start with the header comment")
	}

	loaded, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom() error = %v", err)
	}

	if loaded.Hypervisor.Connect != "qemu:///session" {
		t.Errorf("Loaded Hypervisor.Connect = %v, want 'qemu:///session'", loaded.Hypervisor.Connect)
	}
	if loaded.Dashboard.RefreshSeconds != 7 {
		t.Errorf("Loaded Dashboard.RefreshSeconds = %v, want 7", loaded.Dashboard.RefreshSeconds)
	}
	if !loaded.Dashboard.ShowInactive {
		t.Error("Loaded Dashboard.ShowInactive should be true")
	}
	if loaded.Log.Level != "warn" {
		t.Errorf("Loaded Log.Level = %v, want 'warn'", loaded.Log.Level)
	}

	// No temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Temporary file should not remain after save")
	}
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkLoadFrom(b *testing.B) {
	tmpDir := b.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := NewSettings().saveTo(path); err != nil {
		b.Fatalf("saveTo() error = %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = loadFrom(path)
	}
}
