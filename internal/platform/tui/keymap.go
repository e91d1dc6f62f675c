package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
)

// KeyMap defines the key bindings for the game.
// It translates Bubble Tea key messages to core.Input so the bindings are
// testable without a running program.
type KeyMap struct {
	Pick    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Left, k.Right, k.Confirm, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Left, k.Right, k.Confirm},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setScreen enables the bindings that make sense on screen s, which also
// hides the others from the help view.
func (k *KeyMap) setScreen(s game.Screen) {
	playing := s == game.ScreenPlaying
	k.Pick.SetEnabled(playing)
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)
	k.Restart.SetEnabled(s == game.ScreenEnded)

	switch s {
	case game.ScreenPlaying:
		k.Confirm.SetHelp("enter", "pick")
	case game.ScreenEnded:
		k.Confirm.SetHelp("enter", "play again")
	default:
		k.Confirm.SetHelp("enter", "start")
	}
}

// Decode translates a key message to an input. Disabled bindings never match.
func (k KeyMap) Decode(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Pick):
		return core.Input{Action: core.ActionPick, Slot: int(msg.String()[0] - '1')}
	case key.Matches(msg, k.Left):
		return core.Input{Action: core.ActionLeft}
	case key.Matches(msg, k.Right):
		return core.Input{Action: core.ActionRight}
	case key.Matches(msg, k.Confirm):
		return core.Input{Action: core.ActionConfirm}
	case key.Matches(msg, k.Restart):
		return core.Input{Action: core.ActionRestart}
	}
	return core.Input{Action: core.ActionNone}
}
