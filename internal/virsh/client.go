package virsh

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config holds invocation settings for the control tool.
type Config struct {
	// Binary is the control tool executable, resolved via PATH when not
	// an absolute path. Default: "virsh"
	Binary string

	// ConnectURI is passed as "-c <uri>" when non-empty, selecting the
	// hypervisor connection. Empty uses the tool's own default.
	ConnectURI string

	// SSHBinary is the remote shell executable used for interactive
	// guest sessions. Default: "ssh"
	SSHBinary string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Binary:    "virsh",
		SSHBinary: "ssh",
	}
}

// Client invokes the control tool and hands its captured stdout to the
// parsers in this package. Every piece of hypervisor state flows through
// subprocess output; the client never opens a hypervisor connection of
// its own.
type Client struct {
	config Config
	logger *zap.Logger
}

// NewClient creates a client with the given configuration.
func NewClient(config Config, logger *zap.Logger) *Client {
	if config.Binary == "" {
		config.Binary = "virsh"
	}
	if config.SSHBinary == "" {
		config.SSHBinary = "ssh"
	}
	return &Client{
		config: config,
		logger: logger,
	}
}

// args prepends the connection URI, when configured, to a subcommand argv.
func (c *Client) args(sub ...string) []string {
	if c.config.ConnectURI == "" {
		return sub
	}
	return append([]string{"-c", c.config.ConnectURI}, sub...)
}

// run invokes one control tool subcommand, capturing stdout and stderr
// completely before returning. The context bounds the invocation.
func (c *Client) run(ctx context.Context, sub ...string) (string, error) {
	argv := c.args(sub...)
	start := time.Now()

	cmd := exec.CommandContext(ctx, c.config.Binary, argv...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	// Extract exit code
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	c.logger.Debug("control tool invocation complete",
		zap.String("binary", c.config.Binary),
		zap.Strings("args", argv),
		zap.Duration("duration", time.Since(start)),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_size", stdoutBuf.Len()),
		zap.Int("stderr_size", stderrBuf.Len()),
	)

	if err != nil {
		return stdoutBuf.String(), &CommandError{
			Args:     append([]string{c.config.Binary}, argv...),
			ExitCode: exitCode,
			Stderr:   strings.TrimSpace(stderrBuf.String()),
			Err:      err,
		}
	}

	return stdoutBuf.String(), nil
}

// List returns the raw output of the list subcommand. With all set,
// inactive domains are included.
func (c *Client) List(ctx context.Context, all bool) (string, error) {
	sub := []string{"list"}
	if all {
		sub = append(sub, "--all")
	}
	return c.run(ctx, sub...)
}

// DomIfAddr returns the raw output of the domifaddr subcommand for one
// domain and address source.
func (c *Client) DomIfAddr(ctx context.Context, name, source string) (string, error) {
	return c.run(ctx, "domifaddr", name, "--source", source)
}

// DumpXML returns the domain's XML descriptor.
func (c *Client) DumpXML(ctx context.Context, name string) (string, error) {
	return c.run(ctx, "dumpxml", name)
}

// Start boots a shut-off domain.
func (c *Client) Start(ctx context.Context, name string) error {
	_, err := c.run(ctx, "start", name)
	return err
}

// Shutdown asks a running domain to shut down gracefully.
func (c *Client) Shutdown(ctx context.Context, name string) error {
	_, err := c.run(ctx, "shutdown", name)
	return err
}

// ConsoleCommand builds the interactive console invocation. The returned
// command is meant to inherit the caller's terminal, never to be run with
// captured output.
func (c *Client) ConsoleCommand(name string) *exec.Cmd {
	return exec.Command(c.config.Binary, c.args("console", name)...)
}

// SSHCommand builds the interactive remote shell invocation for
// user@addr, on the same terms as ConsoleCommand.
func (c *Client) SSHCommand(user, addr string) *exec.Cmd {
	return exec.Command(c.config.SSHBinary, fmt.Sprintf("%s@%s", user, addr))
}
