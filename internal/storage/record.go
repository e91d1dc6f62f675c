package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vovakirdan/huematch/internal/game"
)

// HighScoreKey is the fixed key the record is stored under.
const HighScoreKey = "highScore"

// storedRecord is the persisted layout: {"score": 15, "date": "3/9/2024, 2:30:00 PM"}.
type storedRecord struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

func encodeRecord(rec game.HighScoreRecord) ([]byte, error) {
	data, err := json.Marshal(storedRecord{
		Score: rec.Score,
		Date:  rec.Date(),
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode record: %w", err)
	}
	return data, nil
}

// decodeRecord parses a stored record. Unparseable data or a negative score
// means "no record". A date that cannot be parsed keeps the score and leaves
// the timestamp empty.
func decodeRecord(data []byte) (game.HighScoreRecord, bool) {
	var sr storedRecord
	if err := json.Unmarshal(data, &sr); err != nil {
		return game.HighScoreRecord{}, false
	}
	if sr.Score < 0 {
		return game.HighScoreRecord{}, false
	}

	rec := game.HighScoreRecord{Score: sr.Score}
	if sr.Date != "" {
		if at, err := time.ParseInLocation(game.DateLayout, sr.Date, time.Local); err == nil {
			rec.AchievedAt = at
		}
	}
	return rec, true
}
