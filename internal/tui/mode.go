package tui

// Action is a lifecycle operation awaiting confirmation.
type Action int

const (
	ActionStart Action = iota
	ActionShutdown
)

// String returns the verb used in logs.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Title returns the capitalized verb used in prompts.
func (a Action) Title() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionShutdown:
		return "Shut down"
	default:
		return "Unknown"
	}
}

// mode is the dashboard's interaction state. Exactly one mode is active
// at a time, and it alone decides how key presses are interpreted.
// Modal modes carry the target they were opened for, so a refresh that
// moves the cursor cannot silently retarget a pending action.
type mode interface {
	isMode()
}

// modeBrowse is the default navigation state.
type modeBrowse struct{}

// modeConfirm awaits a y/n answer before running a lifecycle action.
type modeConfirm struct {
	name   string
	action Action
}

// modeSSHUser collects the username for an SSH session.
type modeSSHUser struct {
	name string
	ip   string
}

func (modeBrowse) isMode()  {}
func (modeConfirm) isMode() {}
func (modeSSHUser) isMode() {}
