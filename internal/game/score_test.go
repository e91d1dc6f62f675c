package game

import (
	"testing"
	"time"
)

func TestHighScoreRecordDate(t *testing.T) {
	rec := HighScoreRecord{
		Score:      15,
		AchievedAt: time.Date(2024, time.December, 3, 21, 5, 9, 0, time.UTC),
	}
	if got, want := rec.Date(), "12/3/2024, 9:05:09 PM"; got != want {
		t.Errorf("Date() = %q, expected %q", got, want)
	}

	if got := (HighScoreRecord{}).Date(); got != "" {
		t.Errorf("Date() of empty record = %q, expected empty", got)
	}
}
