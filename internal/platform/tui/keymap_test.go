package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDecodePlaying(t *testing.T) {
	km := DefaultKeyMap()
	km.setScreen(game.ScreenPlaying)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"q quits", runeKey('q'), core.Input{Action: core.ActionQuit}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"1 picks first", runeKey('1'), core.Input{Action: core.ActionPick, Slot: 0}},
		{"3 picks third", runeKey('3'), core.Input{Action: core.ActionPick, Slot: 2}},
		{"9 picks ninth", runeKey('9'), core.Input{Action: core.ActionPick, Slot: 8}},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.Input{Action: core.ActionLeft}},
		{"h", runeKey('h'), core.Input{Action: core.ActionLeft}},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.Input{Action: core.ActionRight}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionConfirm}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.Input{Action: core.ActionConfirm}},
		{"r disabled while playing", runeKey('r'), core.Input{Action: core.ActionNone}},
		{"unbound", runeKey('x'), core.Input{Action: core.ActionNone}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.Decode(tc.msg))
		})
	}
}

func TestKeyMapDecodeEnded(t *testing.T) {
	km := DefaultKeyMap()
	km.setScreen(game.ScreenEnded)

	assert.Equal(t, core.ActionRestart, km.Decode(runeKey('r')).Action)
	assert.Equal(t, core.ActionConfirm, km.Decode(tea.KeyMsg{Type: tea.KeyEnter}).Action)
	assert.Equal(t, core.ActionNone, km.Decode(runeKey('1')).Action, "picks are off outside play")
}

func TestKeyMapHelpFollowsScreen(t *testing.T) {
	km := DefaultKeyMap()

	km.setScreen(game.ScreenStart)
	assert.False(t, km.Pick.Enabled())
	assert.False(t, km.Restart.Enabled())
	assert.Equal(t, "start", km.Confirm.Help().Desc)

	km.setScreen(game.ScreenPlaying)
	assert.True(t, km.Pick.Enabled())
	assert.Equal(t, "pick", km.Confirm.Help().Desc)

	km.setScreen(game.ScreenEnded)
	assert.True(t, km.Restart.Enabled())
	assert.False(t, km.Left.Enabled())
}
