// Package storage persists the best score.
// The SQLite backend uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies; the file backend keeps the same JSON record in a plain file.
package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/game"
)

// Store keeps the high score record in a SQLite key/value table.
//
// Store implements sync.Locker so controllers sharing it (one per SSH
// session) can make their load-compare-save sequence atomic. The lock is
// never taken by Store's own methods.
type Store struct {
	sync.Mutex
	db     *sql.DB
	logger *log.Logger
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// logger may be nil.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}
	store := &Store{db: db, logger: logger}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load implements game.ScoreStore. Missing rows, query failures and corrupt
// values all read as "no record".
func (s *Store) Load() (game.HighScoreRecord, bool) {
	raw, ok, err := s.Get(HighScoreKey)
	if err != nil {
		s.logger.Warn("cannot read high score", "error", err)
		return game.HighScoreRecord{}, false
	}
	if !ok {
		return game.HighScoreRecord{}, false
	}

	rec, ok := decodeRecord([]byte(raw))
	if !ok {
		s.logger.Warn("ignoring unreadable high score", "value", raw)
	}
	return rec, ok
}

// Save implements game.ScoreStore.
func (s *Store) Save(rec game.HighScoreRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}
	return s.Put(HighScoreKey, string(data))
}

// Reset deletes the stored high score.
func (s *Store) Reset() error {
	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", HighScoreKey)
	if err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// Get returns the raw value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query %q: %w", key, err)
	}
	return value, true, nil
}

// Put overwrites the raw value stored under key.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}

// Ensure Store implements ScoreStore
var _ game.ScoreStore = (*Store)(nil)
