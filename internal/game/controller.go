// Package game implements the HueMatch round loop: drawing rounds, running
// the countdown, scoring picks and keeping the best score.
package game

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/core"
)

// Controller drives one player's games. It is not safe for concurrent use:
// every method and every scheduled callback must run on the same event loop.
type Controller struct {
	cfg       config.RoundConfig
	presenter Presenter
	store     ScoreStore
	sched     core.Scheduler
	rng       *rand.Rand
	logger    *log.Logger
	now       func() time.Time
	newID     func() string

	state     State
	session   Session
	round     Round
	countdown core.Timer

	// gen is bumped on every StartGame and every new round. Callbacks capture
	// it when scheduled and do nothing if it has moved on.
	gen uint64

	// picked is set once a selection has been accepted for the live round.
	picked bool
}

// ControllerOption customises a Controller.
type ControllerOption func(*Controller)

// WithRand sets the random source used to draw colors.
func WithRand(rng *rand.Rand) ControllerOption {
	return func(c *Controller) { c.rng = rng }
}

// WithSeed seeds the random source. Zero keeps the time-based default.
func WithSeed(seed int64) ControllerOption {
	return func(c *Controller) {
		if seed != 0 {
			c.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the wall clock used to timestamp high scores.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithSessionIDs sets the generator for session IDs.
func WithSessionIDs(newID func() string) ControllerOption {
	return func(c *Controller) { c.newID = newID }
}

// NewController creates a controller in the Idle state.
// store may be nil, in which case no best score is kept.
func NewController(cfg config.RoundConfig, p Presenter, store ScoreStore, sched core.Scheduler, opts ...ControllerOption) *Controller {
	c := &Controller{
		cfg:       cfg,
		presenter: p,
		store:     store,
		sched:     sched,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    log.New(io.Discard),
		now:       time.Now,
		newID:     uuid.NewString,
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ShowStart puts the presenter on the start screen.
func (c *Controller) ShowStart() {
	c.presenter.ShowScreen(ScreenStart)
}

// StartGame begins a fresh session. It is both the start and the restart
// button and may be called in any state.
func (c *Controller) StartGame() {
	c.stopCountdown()
	c.gen++
	c.session = Session{ID: c.newID()}
	c.round = Round{}
	c.picked = false
	c.state = StatePlaying

	c.presenter.UpdateScoreDisplay(0)
	c.presenter.ShowScreen(ScreenPlaying)
	c.logger.Debug("session started", "session", c.session.ID)

	c.nextQuestion()
}

// nextQuestion is the only place a round is created.
func (c *Controller) nextQuestion() {
	if c.state != StatePlaying {
		return
	}
	c.stopCountdown()
	c.gen++
	gen := c.gen

	c.round = NewRound(c.rng, c.cfg.Options)
	c.picked = false
	c.session.CurrentColor = c.round.Target
	c.session.HasColor = true
	c.session.Rounds++

	c.presenter.SetColorBlock(c.round.Target)
	c.presenter.RenderOptions(append([]core.Color(nil), c.round.Options...), func(opt OptionRef) {
		c.handleSelection(gen, opt)
	})

	c.startCountdown(gen)
}

// startCountdown arms the repeating tick. Any previous countdown is
// cancelled first so at most one is ever active.
func (c *Controller) startCountdown(gen uint64) {
	c.stopCountdown()
	c.session.TimeRemainingTicks = c.cfg.Ticks
	c.presenter.UpdateTimerBar(1)
	c.countdown = c.sched.Every(c.cfg.TickInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) stopCountdown() {
	if c.countdown != nil {
		c.countdown.Stop()
		c.countdown = nil
	}
}

func (c *Controller) tick(gen uint64) {
	if c.state != StatePlaying || gen != c.gen {
		return
	}
	c.session.TimeRemainingTicks--
	c.presenter.UpdateTimerBar(c.timerFraction())
	if c.session.TimeRemainingTicks <= 0 {
		c.stopCountdown()
		c.endGame(EndTimeout)
	}
}

func (c *Controller) timerFraction() float64 {
	if c.cfg.Ticks <= 0 {
		return 0
	}
	f := float64(c.session.TimeRemainingTicks) / float64(c.cfg.Ticks)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// HandleSelection scores a pick in the live round. Picks outside a live
// round, or after the round's first pick, are ignored.
func (c *Controller) HandleSelection(opt OptionRef) {
	c.handleSelection(c.gen, opt)
}

func (c *Controller) handleSelection(gen uint64, opt OptionRef) {
	if c.state != StatePlaying || gen != c.gen || c.picked {
		return
	}
	c.picked = true

	if c.round.Matches(opt.Color) {
		c.presenter.MarkOptionFeedback(opt, FeedbackCorrect)
		c.session.Score += c.cfg.Reward
		c.session.Correct++
		c.presenter.UpdateScoreDisplay(c.session.Score)
		c.sched.AfterFunc(c.cfg.FeedbackDelay, func() {
			if c.state != StatePlaying || gen != c.gen {
				return
			}
			c.presenter.ClearOptionFeedback(opt)
			c.nextQuestion()
		})
		return
	}

	c.presenter.MarkOptionFeedback(opt, FeedbackWrong)
	c.sched.AfterFunc(c.cfg.FeedbackDelay, func() {
		if c.state != StatePlaying || gen != c.gen {
			return
		}
		c.endGame(EndMiss)
	})
}

// endGame finishes the session. Calling it on a session that is not
// playing does nothing.
func (c *Controller) endGame(reason EndReason) {
	if c.state != StatePlaying {
		return
	}
	c.stopCountdown()
	c.state = StateEnded
	c.session.EndReason = reason

	final := c.session.Score
	c.presenter.ShowFinalScore(final)

	best := c.updateBest(final)
	c.presenter.ShowHighScore(best.Score, best.AchievedAt)
	c.presenter.ShowScreen(ScreenEnded)

	c.logger.Debug("session ended",
		"session", c.session.ID,
		"score", final,
		"rounds", c.session.Rounds,
		"reason", string(reason),
		"best", best.Score,
	)
}

// updateBest saves score if it beats the stored record and returns the
// record to display.
func (c *Controller) updateBest(score int) HighScoreRecord {
	if c.store == nil {
		return HighScoreRecord{Score: score}
	}
	if l, ok := c.store.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}

	best, ok := c.store.Load()
	if !ok {
		best = HighScoreRecord{}
	}
	if score <= best.Score {
		return best
	}

	rec := HighScoreRecord{Score: score, AchievedAt: c.now()}
	if err := c.store.Save(rec); err != nil {
		c.logger.Warn("could not save high score", "score", score, "error", err)
	} else {
		c.logger.Info("new high score", "session", c.session.ID, "score", score, "previous", best.Score)
	}
	return rec
}

// State returns the controller state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the current session's score.
func (c *Controller) Score() int {
	return c.session.Score
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session {
	return c.session
}

// Round returns a copy of the live round.
func (c *Controller) Round() Round {
	return c.round.Clone()
}
