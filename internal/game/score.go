package game

import "time"

// DateLayout is the human-readable form used to persist and display the
// moment a high score was set.
const DateLayout = "1/2/2006, 3:04:05 PM"

// HighScoreRecord is the single best score ever achieved.
type HighScoreRecord struct {
	Score      int
	AchievedAt time.Time
}

// Date formats AchievedAt with DateLayout, or returns "" when unknown.
func (r HighScoreRecord) Date() string {
	if r.AchievedAt.IsZero() {
		return ""
	}
	return r.AchievedAt.Format(DateLayout)
}

// ScoreStore persists the HighScoreRecord.
//
// Load returns false when there is no record or the stored data cannot be
// read; it never fails louder than that. Save overwrites unconditionally:
// keeping the record monotonic is the caller's job.
//
// A store shared by several controllers may also implement sync.Locker; the
// controller then holds the lock across its load-compare-save sequence.
type ScoreStore interface {
	Load() (HighScoreRecord, bool)
	Save(rec HighScoreRecord) error
}
