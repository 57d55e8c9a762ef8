package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"streamsort/internal/fileutil"
	"streamsort/internal/queue"
)

// TextStore keeps the queue in a pipe-delimited text file.
type TextStore struct {
	path   string
	backup bool
}

// NewTextStore returns a store for path. With backup set, each save first
// copies the existing file to path+".bak".
func NewTextStore(path string, backup bool) *TextStore {
	return &TextStore{path: path, backup: backup}
}

// Location returns the queue file path.
func (s *TextStore) Location() string {
	return s.path
}

// Load reads the queue file. A missing or unreadable file produces an empty
// result rather than an error.
func (s *TextStore) Load(ctx context.Context) (LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}
	result := LoadResult{Shows: []queue.Show{}}

	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Missing = true
		} else {
			result.Unreadable = true
		}
		return result, nil
	}
	defer file.Close()

	shows, skipped, err := Decode(file)
	if err != nil {
		result.Unreadable = true
		return result, nil
	}
	result.Shows = shows
	result.Skipped = skipped
	return result, nil
}

// Save truncates the queue file and writes shows to it.
func (s *TextStore) Save(ctx context.Context, shows []queue.Show) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.backup {
		if _, _, err := fileutil.BackupFile(s.path); err != nil {
			return &IOError{Op: "backup", Path: s.path, Err: err}
		}
	}

	file, err := os.Create(s.path)
	if err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	if err := Encode(file, shows); err != nil {
		_ = file.Close()
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *TextStore) Close() error {
	return nil
}
