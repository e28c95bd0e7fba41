package tui

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/virtui/virtui/internal/logging"
	"github.com/virtui/virtui/internal/virsh"
)

// Backend is everything the dashboard needs from the hypervisor side.
// *inventory.Service satisfies it; tests substitute a scripted fake.
type Backend interface {
	Refresh(ctx context.Context, includeInactive bool) ([]virsh.Domain, error)
	Detail(ctx context.Context, name string) string
	Addresses(ctx context.Context, name string) []string
	Start(ctx context.Context, name string) error
	Shutdown(ctx context.Context, name string) error
	ConsoleCommand(name string) *exec.Cmd
	SSHCommand(user, addr string) *exec.Cmd
}

// Messages

// tickMsg drives the periodic inventory refresh.
type tickMsg struct{}

// snapshotMsg delivers a completed refresh.
type snapshotMsg struct {
	domains []virsh.Domain
	err     error
}

// detailMsg delivers the recomputed detail text for one domain.
type detailMsg struct {
	name string
	text string
}

// sshTargetMsg delivers the resolved addresses for an SSH request.
type sshTargetMsg struct {
	name  string
	addrs []string
}

// actionDoneMsg reports a finished lifecycle command.
type actionDoneMsg struct {
	name   string
	action Action
	err    error
}

// sessionEndedMsg reports a finished console or SSH handoff.
type sessionEndedMsg struct {
	kind string // "console" or "ssh"
	name string
	err  error
}

// detailCache holds at most one entry: the detail text for the currently
// selected domain. A name mismatch with the selection means a recompute
// is in flight and the panel shows the spinner instead.
type detailCache struct {
	name string
	text string
}

// Model is the dashboard state. The program loop is its sole owner,
// so every mutation happens inside Update.
type Model struct {
	backend Backend

	refreshEvery time.Duration

	domains      []virsh.Domain
	cursor       int // index into domains, -1 when the inventory is empty
	showInactive bool

	mode   mode
	detail detailCache
	status string // transient notice, cleared by the next snapshot

	input textinput.Model
	keys  keyMap
	help  help.Model
	spin  spinner.Model

	width  int
	height int

	fatal error
}

// New creates the dashboard over the given backend. The initial snapshot
// is installed separately with SetSnapshot so that a dead control tool
// fails the process before the terminal is taken over.
func New(backend Backend, refreshEvery time.Duration, showInactive bool) Model {
	ti := textinput.New()
	ti.Placeholder = "username"
	ti.CharLimit = 64
	ti.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		backend:      backend,
		refreshEvery: refreshEvery,
		cursor:       -1,
		showInactive: showInactive,
		mode:         modeBrowse{},
		input:        ti,
		keys:         defaultKeyMap(),
		help:         help.New(),
		spin:         sp,
	}
}

// SetSnapshot installs the initial inventory before the program starts.
func (m *Model) SetSnapshot(domains []virsh.Domain) {
	m.domains = domains
	if len(domains) > 0 {
		m.cursor = 0
	} else {
		m.cursor = -1
	}
}

// Err returns the error that forced the dashboard to quit, if any.
func (m Model) Err() error {
	return m.fatal
}

// Init arms the refresh timer and schedules the first detail
// computation.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tickCmd()}
	if name, ok := m.selectedName(); ok {
		cmds = append(cmds, m.detailCmd(name), m.spin.Tick)
	}
	return tea.Batch(cmds...)
}

// Update is the single mutation point for the dashboard state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global quit works from every mode
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tickMsg:
		// Refresh only while browsing; a modal keeps its target either
		// way, but holding the list still under a prompt costs nothing
		// and surprises nobody.
		if _, browsing := m.mode.(modeBrowse); browsing {
			return m, tea.Batch(m.refreshCmd(), m.tickCmd())
		}
		return m, m.tickCmd()

	case snapshotMsg:
		return m.applySnapshot(msg)

	case detailMsg:
		// Stale results are dropped; only the current selection's text
		// may enter the cache
		if name, ok := m.selectedName(); ok && name == msg.name {
			m.detail = detailCache{name: msg.name, text: msg.text}
		}
		return m, nil

	case sshTargetMsg:
		return m.applySSHTarget(msg)

	case actionDoneMsg:
		if msg.err != nil {
			logging.Warn("lifecycle command failed",
				zap.String("domain", msg.name),
				zap.String("action", msg.action.String()),
				zap.Error(msg.err),
			)
			m.status = fmt.Sprintf("%s of %s failed (see log)", msg.action, msg.name)
			return m, nil
		}
		logging.Info("lifecycle command finished",
			zap.String("domain", msg.name),
			zap.String("action", msg.action.String()),
		)
		return m, m.refreshCmd()

	case sessionEndedMsg:
		if msg.err != nil {
			logging.Warn("session ended with error",
				zap.String("kind", msg.kind),
				zap.String("domain", msg.name),
				zap.Error(msg.err),
			)
			m.status = fmt.Sprintf("%s session for %s failed (see log)", msg.kind, msg.name)
			return m, nil
		}
		logging.Info("session ended",
			zap.String("kind", msg.kind),
			zap.String("domain", msg.name),
		)
		return m, nil

	case spinner.TickMsg:
		// The spinner only animates while a detail recompute is pending
		if m.detailPending() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Everything else (cursor blink and friends) belongs to the active
	// text input
	if _, prompting := m.mode.(modeSSHUser); prompting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey interprets a key press according to the active mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch mode := m.mode.(type) {
	case modeBrowse:
		return m.handleBrowseKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg, mode)
	case modeSSHUser:
		return m.handleSSHKey(msg, mode)
	default:
		return m, nil
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logging.Info("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1)

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1)

	case key.Matches(msg, m.keys.Console):
		d, ok := m.selected()
		if !ok || !d.Running() {
			return m, nil
		}
		logging.Info("opening console", zap.String("domain", d.Name))
		return m, m.consoleCmd(d.Name)

	case key.Matches(msg, m.keys.SSH):
		d, ok := m.selected()
		if !ok || !d.Running() {
			return m, nil
		}
		return m, m.sshTargetCmd(d.Name)

	case key.Matches(msg, m.keys.Start):
		d, ok := m.selected()
		if !ok || !d.ShutOff() {
			return m, nil
		}
		m.mode = modeConfirm{name: d.Name, action: ActionStart}
		return m, nil

	case key.Matches(msg, m.keys.Shutdown):
		d, ok := m.selected()
		if !ok || !d.Running() {
			return m, nil
		}
		m.mode = modeConfirm{name: d.Name, action: ActionShutdown}
		return m, nil

	case key.Matches(msg, m.keys.Inactive):
		m.showInactive = !m.showInactive
		logging.Info("inactive visibility toggled", zap.Bool("include_inactive", m.showInactive))
		return m, m.refreshCmd()
	}

	return m, nil
}

// handleConfirmKey accepts exactly y, n, and esc. Every other key is a
// no-op so a stray navigation press cannot dismiss or retarget the
// prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg, c modeConfirm) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeBrowse{}
		logging.Info("action confirmed",
			zap.String("domain", c.name),
			zap.String("action", c.action.String()),
		)
		return m, m.actionCmd(c.name, c.action)
	case "n", "N", "esc":
		m.mode = modeBrowse{}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleSSHKey(msg tea.KeyMsg, s modeSSHUser) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse{}
		m.input.Reset()
		return m, nil

	case tea.KeyEnter:
		user := strings.TrimSpace(m.input.Value())
		if user == "" {
			return m, nil
		}
		m.mode = modeBrowse{}
		m.input.Reset()
		logging.Info("starting ssh session",
			zap.String("domain", s.name),
			zap.String("target", user+"@"+s.ip),
		)
		return m, m.sshCmd(user, s.ip, s.name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// moveCursor advances the selection circularly, wrapping in both
// directions.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if len(m.domains) == 0 {
		return m, nil
	}
	m.cursor = (m.cursor + delta + len(m.domains)) % len(m.domains)
	return m.syncDetail()
}

// syncDetail schedules a detail recompute when the selected name differs
// from the cached one. A selection landing back on the cached name costs
// nothing.
func (m Model) syncDetail() (tea.Model, tea.Cmd) {
	name, ok := m.selectedName()
	if !ok {
		m.detail = detailCache{}
		return m, nil
	}
	if m.detail.name == name {
		return m, nil
	}
	m.detail = detailCache{}
	return m, tea.Batch(m.detailCmd(name), m.spin.Tick)
}

// applySnapshot installs a refreshed inventory, clamps the cursor, and
// keeps the detail cache only while the selected name is unchanged.
func (m Model) applySnapshot(msg snapshotMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// No inventory means nothing to show; quit and let main report
		m.fatal = msg.err
		return m, tea.Quit
	}

	m.domains = msg.domains
	m.status = ""
	switch {
	case len(m.domains) == 0:
		m.cursor = -1
	case m.cursor < 0:
		m.cursor = 0
	case m.cursor >= len(m.domains):
		m.cursor = len(m.domains) - 1
	}
	return m.syncDetail()
}

// applySSHTarget opens the username prompt when the resolver found an
// address. The selection may have moved while resolving; a stale result
// is dropped.
func (m Model) applySSHTarget(msg sshTargetMsg) (tea.Model, tea.Cmd) {
	name, ok := m.selectedName()
	if !ok || name != msg.name {
		return m, nil
	}
	if _, browsing := m.mode.(modeBrowse); !browsing {
		return m, nil
	}

	if len(msg.addrs) == 0 {
		m.status = fmt.Sprintf("no IPv4 address found for %s", msg.name)
		return m, nil
	}

	m.mode = modeSSHUser{name: msg.name, ip: msg.addrs[0]}
	m.input.Reset()
	return m, m.input.Focus()
}

// Commands

// tickCmd schedules the next periodic refresh.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// refreshCmd rebuilds the snapshot off the update loop.
func (m Model) refreshCmd() tea.Cmd {
	backend := m.backend
	include := m.showInactive
	return func() tea.Msg {
		domains, err := backend.Refresh(context.Background(), include)
		return snapshotMsg{domains: domains, err: err}
	}
}

// detailCmd recomputes the detail text for one domain.
func (m Model) detailCmd(name string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		return detailMsg{name: name, text: backend.Detail(context.Background(), name)}
	}
}

// sshTargetCmd resolves addresses ahead of the username prompt.
func (m Model) sshTargetCmd(name string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		return sshTargetMsg{name: name, addrs: backend.Addresses(context.Background(), name)}
	}
}

// actionCmd runs one lifecycle command to completion.
func (m Model) actionCmd(name string, action Action) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		var err error
		switch action {
		case ActionStart:
			err = backend.Start(context.Background(), name)
		case ActionShutdown:
			err = backend.Shutdown(context.Background(), name)
		}
		return actionDoneMsg{name: name, action: action, err: err}
	}
}

// consoleCmd hands the terminal to the domain console until it exits.
func (m Model) consoleCmd(name string) tea.Cmd {
	cmd := m.backend.ConsoleCommand(name)
	return tea.Sequence(
		tea.ShowCursor,
		tea.ExecProcess(cmd, func(err error) tea.Msg {
			return sessionEndedMsg{kind: "console", name: name, err: err}
		}),
	)
}

// sshCmd hands the terminal to an SSH session until it exits.
func (m Model) sshCmd(user, ip, name string) tea.Cmd {
	cmd := m.backend.SSHCommand(user, ip)
	return tea.Sequence(
		tea.ShowCursor,
		tea.ExecProcess(cmd, func(err error) tea.Msg {
			return sessionEndedMsg{kind: "ssh", name: name, err: err}
		}),
	)
}

// Helpers

// selected returns the domain under the cursor.
func (m Model) selected() (virsh.Domain, bool) {
	if m.cursor < 0 || m.cursor >= len(m.domains) {
		return virsh.Domain{}, false
	}
	return m.domains[m.cursor], true
}

func (m Model) selectedName() (string, bool) {
	d, ok := m.selected()
	return d.Name, ok
}

// detailPending reports that a recompute is in flight for the selection.
func (m Model) detailPending() bool {
	name, ok := m.selectedName()
	return ok && m.detail.name != name
}
