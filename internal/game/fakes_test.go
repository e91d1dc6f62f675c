package game

import (
	"errors"
	"sync"
	"time"

	"github.com/vovakirdan/huematch/internal/core"
)

// recordingPresenter remembers everything the controller asked it to show.
type recordingPresenter struct {
	screens    []Screen
	block      core.Color
	options    []core.Color
	onSelect   func(OptionRef)
	renders    int
	feedback   map[int]Feedback
	cleared    []OptionRef
	score      int
	timerBar   []float64
	finalScore []int
	highScore  int
	highAt     time.Time
	highCalls  int
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{feedback: make(map[int]Feedback)}
}

func (p *recordingPresenter) ShowScreen(s Screen)        { p.screens = append(p.screens, s) }
func (p *recordingPresenter) SetColorBlock(c core.Color) { p.block = c }

func (p *recordingPresenter) RenderOptions(colors []core.Color, onSelect func(OptionRef)) {
	p.options = colors
	p.onSelect = onSelect
	p.renders++
	p.feedback = make(map[int]Feedback)
}

func (p *recordingPresenter) MarkOptionFeedback(opt OptionRef, kind Feedback) {
	p.feedback[opt.Index] = kind
}

func (p *recordingPresenter) ClearOptionFeedback(opt OptionRef) {
	delete(p.feedback, opt.Index)
	p.cleared = append(p.cleared, opt)
}

func (p *recordingPresenter) UpdateScoreDisplay(score int)    { p.score = score }
func (p *recordingPresenter) UpdateTimerBar(fraction float64) { p.timerBar = append(p.timerBar, fraction) }
func (p *recordingPresenter) ShowFinalScore(score int)        { p.finalScore = append(p.finalScore, score) }

func (p *recordingPresenter) ShowHighScore(score int, at time.Time) {
	p.highScore = score
	p.highAt = at
	p.highCalls++
}

func (p *recordingPresenter) lastScreen() Screen {
	if len(p.screens) == 0 {
		return -1
	}
	return p.screens[len(p.screens)-1]
}

// click picks the slot holding a matching (or, if correct is false, a
// non-matching) color through the presenter's callback, like a user would.
func (p *recordingPresenter) click(target core.Color, correct bool) (OptionRef, bool) {
	for i, c := range p.options {
		if (c == target) == correct {
			opt := OptionRef{Index: i, Color: c}
			p.onSelect(opt)
			return opt, true
		}
	}
	return OptionRef{}, false
}

// memStore is an in-memory ScoreStore.
type memStore struct {
	sync.Mutex
	rec     HighScoreRecord
	has     bool
	saves   int
	saveErr error
}

func (s *memStore) Load() (HighScoreRecord, bool) { return s.rec, s.has }

func (s *memStore) Save(rec HighScoreRecord) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.rec = rec
	s.has = true
	s.saves++
	return nil
}

var errDiskFull = errors.New("disk full")
