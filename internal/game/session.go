package game

import "github.com/vovakirdan/huematch/internal/core"

// State is the controller's position in the Idle -> Playing -> Ended loop.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StatePlaying:
		return "Playing"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// EndReason records why a session finished.
type EndReason string

const (
	EndNone    EndReason = ""
	EndTimeout EndReason = "timeout"
	EndMiss    EndReason = "miss"
)

// Session is the mutable state of one play-through.
type Session struct {
	ID                 string
	Score              int
	CurrentColor       core.Color
	HasColor           bool // false until the first round is drawn
	TimeRemainingTicks int
	Rounds             int // rounds drawn so far
	Correct            int // correct picks so far
	EndReason          EndReason
}
