package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, click - flap
	ActionRestart        // R, Enter - start a run or restart after game over
	ActionPause          // P - pause/unpause the host loop
	ActionHelp           // ? - toggle the full help footer
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents collects edge-triggered requests between two ticks. Any number of
// requests of the same kind coalesce into one.
type Intents struct {
	Impulse bool
	Restart bool
}

// Request records an action. Actions that are not simulation intents are
// ignored.
func (in *Intents) Request(a Action) {
	switch a {
	case ActionJump:
		in.Impulse = true
	case ActionRestart:
		in.Restart = true
	}
}

// Take returns the pending intents and clears them.
func (in *Intents) Take() Intents {
	out := *in
	*in = Intents{}
	return out
}
