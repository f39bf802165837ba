package core

// Action represents a semantic UI action, abstracted from physical key presses.
// Presenters react to actions rather than raw keys so bindings stay in one place.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, K, Up arrow - move focus up
	ActionDown            // S, J, Down arrow - move focus down
	ActionLeft            // A, H, Left arrow - move focus left
	ActionRight           // D, L, Right arrow - move focus right
	ActionNext            // Tab - cycle focus forward
	ActionPrev            // Shift+Tab - cycle focus backward
	ActionActivate        // Enter, Space - activate the focused element
	ActionBack            // Esc, B - go back
	ActionHelp            // ? - toggle full help
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionActivate:
		return "Activate"
	case ActionBack:
		return "Back"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
