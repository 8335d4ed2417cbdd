package core

// Action represents a semantic host action, abstracted from physical key presses.
// Paddle movement itself is pointer driven; actions cover nudging and session control.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - nudge paddle left
	ActionRight             // D, Right arrow - nudge paddle right
	ActionStart             // Enter, Space - start (or restart) a run
	ActionClose             // Escape - close the game overlay
	ActionOpen              // G - open the game overlay
	ActionScores            // Tab - toggle the scoreboard
	ActionScreenshot        // Ctrl+S - save a text screenshot
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionClose:
		return "Close"
	case ActionOpen:
		return "Open"
	case ActionScores:
		return "Scores"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
