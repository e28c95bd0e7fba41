// Virtui is an interactive terminal dashboard for libvirt guests.
//
// It lists the domains known to the hypervisor with live state,
// resources, and addresses, and attaches consoles, SSH sessions, and
// lifecycle commands to the selected machine. All state comes from
// invoking the virsh binary and parsing its output; no libvirt
// bindings are linked.
//
// Usage:
//
//	virtui [command] [flags]
//
// Running without arguments launches the dashboard.
// See 'virtui --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/virtui/virtui/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "virtui",
	Short: "Terminal dashboard for libvirt guests",
	Long: `An interactive terminal dashboard for virtual machines managed
through the virsh command line tool.

Shows the hypervisor's domains with their state, resources, and
addresses, refreshed continuously, and opens consoles, SSH sessions,
and lifecycle commands on the selected machine.

If no command is specified, the dashboard launches.`,
	Version: version.Version,
	RunE:    runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("virtui %s\n", version.Full())
	},
}
