package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
)

// Model is the Bubble Tea model for one player.
type Model struct {
	ctrl     *game.Controller
	view     *view
	sched    *teaScheduler
	keys     *KeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model whose controller plays rounds described by round
// and keeps its best score in store. store and logger may be nil.
func NewModel(round config.RoundConfig, store game.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) Model {
	v := newView()
	v.resize(cfg.ScreenW)
	sched := newTeaScheduler()
	keys := DefaultKeyMap()
	keys.setScreen(game.ScreenStart)

	ctrl := game.NewController(round, v, store, sched,
		game.WithSeed(cfg.Seed),
		game.WithLogger(logger),
	)

	return Model{
		ctrl:   ctrl,
		view:   v,
		sched:  sched,
		keys:   &keys,
		help:   help.New(),
		config: cfg,
	}
}

// Init shows the start screen.
func (m Model) Init() tea.Cmd {
	m.ctrl.ShowStart()
	return tea.Batch(tea.SetWindowTitle("HueMatch"), m.sched.Drain())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.view.resize(msg.Width)
		m.help.Width = msg.Width

	case timerMsg:
		m.sched.fire(msg.id)
	}

	return m.settle()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.Decode(msg)
	if in.Action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.view.screen != game.ScreenPlaying {
		if in.StartsGame() {
			m.ctrl.StartGame()
		}
		return m.settle()
	}

	switch in.Action {
	case core.ActionPick:
		m.view.pick(in.Slot)
	case core.ActionConfirm:
		m.view.pick(m.view.cursor)
	case core.ActionLeft:
		m.view.move(-1)
	case core.ActionRight:
		m.view.move(1)
	}

	return m.settle()
}

// settle syncs the key map with the current screen and flushes any timers
// the controller scheduled while handling the message.
func (m Model) settle() (tea.Model, tea.Cmd) {
	m.keys.setScreen(m.view.screen)
	return m, m.sched.Drain()
}

// Controller returns the game controller driven by this model.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program for a local player.
func Run(round config.RoundConfig, store game.ScoreStore, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(round, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
