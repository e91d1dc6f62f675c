package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game flow to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H - move swatch cursor left
	ActionRight          // Right arrow, L - move swatch cursor right
	ActionPick           // 1..9 - pick a swatch directly
	ActionConfirm        // Enter, Space - pick highlighted swatch / start
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionPick:
		return "Pick"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a single decoded key press.
// Slot is the zero-based swatch index and is only meaningful for ActionPick.
type Input struct {
	Action Action
	Slot   int
}

// StartsGame reports whether the input acts as the start/restart button.
func (in Input) StartsGame() bool {
	return in.Action == ActionConfirm || in.Action == ActionRestart
}
