package storage

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/huematch/internal/config"
	"github.com/vovakirdan/huematch/internal/game"
)

// Backend is a ScoreStore the CLI can also reset and close.
type Backend interface {
	game.ScoreStore
	Reset() error
	Close() error
}

// OpenBackend opens the store selected by cfg.
func OpenBackend(cfg config.StorageConfig, logger *log.Logger) (Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		store, err := Open(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendFile:
		store, err := OpenFile(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.Backend)
	}
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*FileStore)(nil)
)
