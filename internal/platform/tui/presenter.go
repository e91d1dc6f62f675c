package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/game"
)

const (
	maxTimerWidth = 40
	minTimerWidth = 10
)

// view holds everything the controller has told us to display.
// It implements game.Presenter; the model reads it back in View.
type view struct {
	screen game.Screen

	block    core.Color
	hasBlock bool

	options  []core.Color
	onSelect func(game.OptionRef)
	locked   bool // set after the first pick until the next RenderOptions
	cursor   int
	feedback map[int]game.Feedback

	score    int
	fraction float64
	timer    progress.Model

	finalScore int
	best       game.HighScoreRecord
}

func newView() *view {
	return &view{
		screen:   game.ScreenStart,
		feedback: make(map[int]game.Feedback),
		timer: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(maxTimerWidth),
		),
	}
}

// ShowScreen implements game.Presenter.
func (v *view) ShowScreen(s game.Screen) {
	v.screen = s
}

// SetColorBlock implements game.Presenter.
func (v *view) SetColorBlock(c core.Color) {
	v.block = c
	v.hasBlock = true
}

// RenderOptions implements game.Presenter. It unlocks input for the new round.
func (v *view) RenderOptions(colors []core.Color, onSelect func(game.OptionRef)) {
	v.options = colors
	v.onSelect = onSelect
	v.locked = false
	v.feedback = make(map[int]game.Feedback)
	if v.cursor >= len(colors) {
		v.cursor = 0
	}
}

// MarkOptionFeedback implements game.Presenter.
func (v *view) MarkOptionFeedback(opt game.OptionRef, kind game.Feedback) {
	v.feedback[opt.Index] = kind
}

// ClearOptionFeedback implements game.Presenter.
func (v *view) ClearOptionFeedback(opt game.OptionRef) {
	delete(v.feedback, opt.Index)
}

// UpdateScoreDisplay implements game.Presenter.
func (v *view) UpdateScoreDisplay(score int) {
	v.score = score
}

// UpdateTimerBar implements game.Presenter.
func (v *view) UpdateTimerBar(fraction float64) {
	v.fraction = fraction
}

// ShowFinalScore implements game.Presenter.
func (v *view) ShowFinalScore(score int) {
	v.finalScore = score
}

// ShowHighScore implements game.Presenter.
func (v *view) ShowHighScore(score int, achievedAt time.Time) {
	v.best = game.HighScoreRecord{Score: score, AchievedAt: achievedAt}
}

// pick delivers a selection of slot i to the controller. It returns false
// when input is locked or the slot does not exist.
func (v *view) pick(i int) bool {
	if v.screen != game.ScreenPlaying || v.locked || v.onSelect == nil {
		return false
	}
	if i < 0 || i >= len(v.options) {
		return false
	}
	v.locked = true
	v.cursor = i
	v.onSelect(game.OptionRef{Index: i, Color: v.options[i]})
	return true
}

// move shifts the swatch cursor by delta, wrapping around.
func (v *view) move(delta int) {
	n := len(v.options)
	if n == 0 || v.locked {
		return
	}
	v.cursor = ((v.cursor+delta)%n + n) % n
}

// resize fits the timer bar to the terminal width.
func (v *view) resize(width int) {
	w := width - 4
	if w > maxTimerWidth {
		w = maxTimerWidth
	}
	if w < minTimerWidth {
		w = minTimerWidth
	}
	v.timer.Width = w
}

var _ game.Presenter = (*view)(nil)
