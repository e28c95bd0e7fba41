package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/virtui/virtui/internal/config"
	"github.com/virtui/virtui/internal/inventory"
	"github.com/virtui/virtui/internal/logging"
	"github.com/virtui/virtui/internal/tui"
	"github.com/virtui/virtui/internal/ui"
	"github.com/virtui/virtui/internal/virsh"
)

// Command flags
var (
	connectURI string
	logLevel   string
	logFile    string
	showAll    bool
	assumeYes  bool
)

func init() {
	// Common flags for every command (persistent on root)
	rootCmd.PersistentFlags().StringVarP(&connectURI, "connect", "c", "", "Hypervisor connection URI (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config file)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (overrides config file)")
	rootCmd.PersistentFlags().BoolVarP(&showAll, "all", "a", false, "Include defined but inactive domains")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(shutdownCmd)
	rootCmd.AddCommand(configCmd)
}

// virshTroubleshooting lists the usual suspects when an invocation
// fails.
var virshTroubleshooting = []string{
	"Check that libvirtd is running: systemctl status libvirtd",
	"Verify connectivity: virsh -c <uri> list --all",
	"Make sure your user may talk to the hypervisor (libvirt group)",
	"Inspect the log file for the full command transcript",
}

// newService loads the configuration, applies flag overrides, starts
// logging, and wires the virsh client into an inventory service.
func newService(cmd *cobra.Command) (*inventory.Service, *config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("connect") {
		settings.Hypervisor.Connect = connectURI
	}
	if cmd.Flags().Changed("log-level") {
		settings.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		settings.Log.File = logFile
	}

	if err := logging.Initialize(settings.Log.Level, settings.Log.File); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	client := virsh.NewClient(virsh.Config{
		Binary:     settings.Hypervisor.Binary,
		ConnectURI: settings.Hypervisor.Connect,
		SSHBinary:  settings.SSH.Binary,
	}, logging.GetLogger())

	return inventory.NewService(client, logging.GetLogger()), settings, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	if !ui.IsInteractive() {
		return fmt.Errorf("stdout is not a terminal; use 'virtui list' for scripted output")
	}

	service, settings, err := newService(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	includeInactive := settings.Dashboard.ShowInactive || showAll

	// One synchronous refresh before the terminal is taken over, so a
	// broken virsh setup fails with a readable error instead of a
	// flash of alternate screen
	domains, err := service.Refresh(cmd.Context(), includeInactive)
	if err != nil {
		return err
	}

	model := tui.New(service, settings.RefreshInterval(), includeInactive)
	model.SetSnapshot(domains)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// listCmd prints the inventory once
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List domains without starting the dashboard",
	Long: `Print the domain inventory once and exit.

The listing carries the same columns as the dashboard: id, name,
vcpus, memory, and state. Only running domains appear unless --all
is given.`,
	Example: `  # Running domains only
  virtui list

  # Include defined but inactive domains
  virtui list --all

  # Against a remote hypervisor
  virtui list -c qemu+ssh://host/system`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	service, _, err := newService(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	domains, err := service.Refresh(cmd.Context(), showAll)
	if err != nil {
		return err
	}

	fmt.Println(ui.RenderDomainTable(domains))
	return nil
}

// showCmd prints one domain with its gathered detail
var showCmd = &cobra.Command{
	Use:   "show <domain>",
	Short: "Show one domain in detail",
	Long: `Display one domain with its resolved IPv4 addresses and the facts
gathered from its XML descriptor: networks, interface descriptors,
emulator, and disks.`,
	Example: `  virtui show web-frontend

  virtui show build-runner -c qemu:///system`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	service, _, err := newService(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	name := args[0]
	domains, err := service.Refresh(cmd.Context(), true)
	if err != nil {
		return err
	}

	for _, d := range domains {
		if d.Name == name {
			fmt.Println(ui.RenderDomainPanel(d, service.Detail(cmd.Context(), name)))
			return nil
		}
	}
	return fmt.Errorf("domain %q is not known to the hypervisor", name)
}

// startCmd boots a defined domain
var startCmd = &cobra.Command{
	Use:   "start <domain>",
	Short: "Start a defined domain",
	Example: `  virtui start web-frontend

  # Skip the confirmation prompt
  virtui start web-frontend --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runStart,
}

// shutdownCmd asks a running domain to power off
var shutdownCmd = &cobra.Command{
	Use:   "shutdown <domain>",
	Short: "Request a graceful shutdown",
	Long: `Ask the guest to shut down through ACPI. The guest may take a
while to power off, or ignore the request entirely; the listing
shows the state it settles in.`,
	Example: `  virtui shutdown web-frontend

  # Skip the confirmation prompt
  virtui shutdown web-frontend -y`,
	Args: cobra.ExactArgs(1),
	RunE: runShutdown,
}

func init() {
	startCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	shutdownCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
}

func runStart(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	service, _, err := newService(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	name := args[0]
	if !assumeYes && !ui.ConfirmLifecycleAction("Start", name) {
		return nil
	}

	if err := service.Start(cmd.Context(), name); err != nil {
		fmt.Println(ui.RenderFailure("Start "+name, err, virshTroubleshooting))
		return fmt.Errorf("start %s failed", name)
	}

	fmt.Println(ui.RenderSuccess("Start requested", ui.Detail{Key: "Domain", Value: name}))
	return nil
}

func runShutdown(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	service, _, err := newService(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync()

	name := args[0]
	if !assumeYes && !ui.ConfirmLifecycleAction("Shut down", name) {
		return nil
	}

	if err := service.Shutdown(cmd.Context(), name); err != nil {
		fmt.Println(ui.RenderFailure("Shutdown "+name, err, virshTroubleshooting))
		return fmt.Errorf("shutdown %s failed", name)
	}

	fmt.Println(ui.RenderSuccess("Shutdown requested", ui.Detail{Key: "Domain", Value: name}))
	return nil
}

// configCmd groups configuration file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the virtui configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with defaults",
	Long: `Write the default configuration to the user config directory,
ready to edit. Refuses to touch an existing file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("configuration already exists at %s", path)
		}
		if err := config.WriteDefault(); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
