package virsh

import (
	"fmt"
	"strings"
)

// CommandError represents a failed control tool invocation.
// It carries the full argv, exit code, and captured stderr so the log has
// everything needed to reproduce the failure by hand.
type CommandError struct {
	// Args is the complete command line that failed
	Args []string

	// ExitCode is the process exit code (-1 if the process never ran)
	ExitCode int

	// Stderr is the captured standard error output
	Stderr string

	// Err is the underlying error, if any
	Err error
}

func (e *CommandError) Error() string {
	cmdline := strings.Join(e.Args, " ")
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed (exit code %d): %s", cmdline, e.ExitCode, e.Stderr)
	}
	if e.Err != nil {
		return fmt.Sprintf("command %q failed (exit code %d): %v", cmdline, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed (exit code %d)", cmdline, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
