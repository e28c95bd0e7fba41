package virsh

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestClientArgs(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		sub    []string
		want   []string
	}{
		{
			name:   "no connection URI",
			config: Config{},
			sub:    []string{"list", "--all"},
			want:   []string{"list", "--all"},
		},
		{
			name:   "connection URI is prepended",
			config: Config{ConnectURI: "qemu:///system"},
			sub:    []string{"list"},
			want:   []string{"-c", "qemu:///system", "list"},
		},
		{
			name:   "connection URI with domifaddr",
			config: Config{ConnectURI: "qemu+ssh://host/system"},
			sub:    []string{"domifaddr", "vm1", "--source", "lease"},
			want:   []string{"-c", "qemu+ssh://host/system", "domifaddr", "vm1", "--source", "lease"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config, zap.NewNop())
			got := c.args(tt.sub...)
			if len(got) != len(tt.want) {
				t.Fatalf("args() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("args()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(Config{}, zap.NewNop())

	if c.config.Binary != "virsh" {
		t.Errorf("Binary = %q, want 'virsh'", c.config.Binary)
	}
	if c.config.SSHBinary != "ssh" {
		t.Errorf("SSHBinary = %q, want 'ssh'", c.config.SSHBinary)
	}
}

func TestConsoleCommand(t *testing.T) {
	c := NewClient(Config{Binary: "virsh", ConnectURI: "qemu:///system"}, zap.NewNop())

	cmd := c.ConsoleCommand("vm1")
	want := []string{"-c", "qemu:///system", "console", "vm1"}
	if len(cmd.Args) != len(want)+1 {
		t.Fatalf("ConsoleCommand args = %v, want binary + %v", cmd.Args, want)
	}
	for i, arg := range want {
		if cmd.Args[i+1] != arg {
			t.Errorf("ConsoleCommand arg %d = %q, want %q", i+1, cmd.Args[i+1], arg)
		}
	}
}

func TestSSHCommand(t *testing.T) {
	c := NewClient(Config{SSHBinary: "ssh"}, zap.NewNop())

	cmd := c.SSHCommand("admin", "192.168.122.5")
	if len(cmd.Args) != 2 {
		t.Fatalf("SSHCommand args = %v, want binary + target", cmd.Args)
	}
	if cmd.Args[1] != "admin@192.168.122.5" {
		t.Errorf("SSHCommand target = %q, want admin@192.168.122.5", cmd.Args[1])
	}
}

func TestCommandError(t *testing.T) {
	underlying := errors.New("exit status 1")
	err := &CommandError{
		Args:     []string{"virsh", "start", "vm1"},
		ExitCode: 1,
		Stderr:   "error: Domain is already active",
		Err:      underlying,
	}

	msg := err.Error()
	if !strings.Contains(msg, "virsh start vm1") {
		t.Errorf("Error() = %q, should contain the command line", msg)
	}
	if !strings.Contains(msg, "exit code 1") {
		t.Errorf("Error() = %q, should contain the exit code", msg)
	}
	if !strings.Contains(msg, "already active") {
		t.Errorf("Error() = %q, should contain stderr", msg)
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should find the underlying error")
	}

	var cmdErr *CommandError
	if !errors.As(error(err), &cmdErr) {
		t.Error("errors.As() should match *CommandError")
	}
}

func TestCommandErrorWithoutStderr(t *testing.T) {
	err := &CommandError{
		Args:     []string{"virsh", "list"},
		ExitCode: -1,
		Err:      errors.New(`exec: "virsh": executable file not found in $PATH`),
	}

	msg := err.Error()
	if !strings.Contains(msg, "not found") {
		t.Errorf("Error() = %q, should fall back to the underlying error", msg)
	}
}
