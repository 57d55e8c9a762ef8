package storage

import (
	"context"
	"fmt"

	"streamsort/internal/config"
	"streamsort/internal/queue"
)

// Store is a whole-queue persistence sink and source.
type Store interface {
	// Load reads every persisted show in order.
	Load(ctx context.Context) (LoadResult, error)
	// Save replaces the persisted queue with shows.
	Save(ctx context.Context, shows []queue.Show) error
	// Location names where the queue lives, for messages and lock files.
	Location() string
	Close() error
}

// LoadResult describes the outcome of a tolerant load.
type LoadResult struct {
	Shows []queue.Show
	// Skipped counts lines dropped because episodes or rating did not parse.
	Skipped int
	// Missing is set when the source did not exist.
	Missing bool
	// Unreadable is set when the source existed but could not be read.
	Unreadable bool
}

// Loaded returns the number of shows read.
func (r LoadResult) Loaded() int {
	return len(r.Shows)
}

// Open returns the store selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendText, "":
		return NewTextStore(cfg.Paths.QueueFile, cfg.Storage.Backup), nil
	case config.BackendSQLite:
		if err := cfg.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("ensure directories: %w", err)
		}
		return OpenSQLite(ctx, cfg.Storage.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}
