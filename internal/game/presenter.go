package game

import (
	"time"

	"github.com/vovakirdan/huematch/internal/core"
)

// Screen identifies one of the three top-level views.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenEnded
)

// String returns a human-readable name for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "Start"
	case ScreenPlaying:
		return "Playing"
	case ScreenEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Feedback is the verdict shown on a picked option.
type Feedback int

const (
	FeedbackCorrect Feedback = iota
	FeedbackWrong
)

// String returns a human-readable name for the feedback kind.
func (f Feedback) String() string {
	if f == FeedbackCorrect {
		return "Correct"
	}
	return "Wrong"
}

// OptionRef identifies one displayed option: its slot and the color it shows.
type OptionRef struct {
	Index int
	Color core.Color
}

// Presenter renders the game. The controller never reads anything back from
// it; every call is a one-way instruction.
//
// Implementations should ignore further selections in a round once one has
// been delivered through the onSelect callback.
type Presenter interface {
	ShowScreen(s Screen)
	SetColorBlock(c core.Color)
	RenderOptions(colors []core.Color, onSelect func(OptionRef))
	MarkOptionFeedback(opt OptionRef, kind Feedback)
	ClearOptionFeedback(opt OptionRef)
	UpdateScoreDisplay(score int)
	UpdateTimerBar(fraction float64)
	ShowFinalScore(score int)
	ShowHighScore(score int, achievedAt time.Time)
}
