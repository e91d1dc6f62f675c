package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/game"
)

// FileStore keeps the high score record as a JSON file.
// Writes go to a temporary file that is renamed into place.
type FileStore struct {
	sync.Mutex
	path   string
	logger *log.Logger
}

// OpenFile prepares a file store at path, creating parent directories.
// The file itself is created on the first Save.
func OpenFile(path string, logger *log.Logger) (*FileStore, error) {
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}, nil
}

// Path returns the file backing the store.
func (f *FileStore) Path() string {
	return f.path
}

// Load implements game.ScoreStore.
func (f *FileStore) Load() (game.HighScoreRecord, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("cannot read high score", "path", f.path, "error", err)
		}
		return game.HighScoreRecord{}, false
	}
	rec, ok := decodeRecord(data)
	if !ok {
		f.logger.Warn("ignoring unreadable high score", "path", f.path)
	}
	return rec, ok
}

// Save implements game.ScoreStore.
func (f *FileStore) Save(rec game.HighScoreRecord) error {
	data, err := encodeRecord(rec)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// Reset deletes the stored high score.
func (f *FileStore) Reset() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// Close implements Backend. The file store holds no open handles.
func (f *FileStore) Close() error {
	return nil
}

var _ game.ScoreStore = (*FileStore)(nil)
