package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"streamsort/internal/logging"
	"streamsort/internal/queue"
	"streamsort/internal/storage"
	"streamsort/internal/textutil"
)

const (
	suggestionThreshold = 0.5
	suggestionLimit     = 3
)

// LockSuffix is appended to the store location to name the session lock file.
const LockSuffix = ".lock"

// ErrLocked is returned by Lock when another process holds the queue.
var ErrLocked = errors.New("queue is in use by another streamsort session")

// Session is the caller-facing handle on a queue and its store.
type Session struct {
	id     string
	queue  *queue.Queue
	store  storage.Store
	base   *slog.Logger
	logger *slog.Logger
	lock   *flock.Flock
}

// New returns a session with an empty queue backed by store.
func New(store storage.Store, logger *slog.Logger) *Session {
	id := uuid.NewString()
	base := logging.NewComponentLogger(logger, "session")
	return &Session{
		id:     id,
		queue:  queue.New(),
		store:  store,
		base:   base,
		logger: base.With(logging.String(logging.FieldSessionID, id)),
		lock:   flock.New(store.Location() + LockSuffix),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Context tags ctx with the session ID.
func (s *Session) Context(ctx context.Context) context.Context {
	return logging.WithSessionID(ctx, s.id)
}

// contextLogger returns the session logger with the fields carried by ctx,
// always including this session's ID.
func (s *Session) contextLogger(ctx context.Context) *slog.Logger {
	if _, ok := logging.SessionIDFromContext(ctx); !ok {
		ctx = s.Context(ctx)
	}
	return logging.WithContext(ctx, s.base)
}

// Queue exposes the underlying queue.
func (s *Session) Queue() *queue.Queue {
	return s.queue
}

// Location returns where the configured store persists the queue.
func (s *Session) Location() string {
	return s.store.Location()
}

// Lock acquires the advisory lock for the store location.
func (s *Session) Lock() error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", s.lock.Path(), err)
	}
	if !ok {
		return fmt.Errorf("%w (lock file %s)", ErrLocked, s.lock.Path())
	}
	s.logger.Debug("session lock acquired", logging.Args(logging.String(logging.FieldPath, s.lock.Path()))...)
	return nil
}

// Close releases the lock, if held, and the store.
func (s *Session) Close() error {
	var errs []error
	if s.lock.Locked() {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release lock: %w", err))
		}
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}

// AddShow parses and validates text input and appends the show.
func (s *Session) AddShow(title, genre, episodesText, ratingText string) error {
	show, err := queue.ParseShow(title, genre, episodesText, ratingText)
	if err == nil {
		err = s.queue.Add(show)
	}
	if err != nil {
		s.logRejected("add rejected", title, err)
		return err
	}
	s.logger.Info("show added", logging.Args(
		logging.String(logging.FieldTitle, title),
		logging.Int(logging.FieldCount, s.queue.Len()),
	)...)
	return nil
}

// RemoveShow removes the first show titled exactly title.
func (s *Session) RemoveShow(title string) error {
	if err := s.queue.Remove(title); err != nil {
		s.logRejected("remove rejected", title, err)
		return err
	}
	s.logger.Info("show removed", logging.Args(
		logging.String(logging.FieldTitle, title),
		logging.Int(logging.FieldCount, s.queue.Len()),
	)...)
	return nil
}

// ListShows returns the queue in current order with 1-based positions.
func (s *Session) ListShows() []queue.Entry {
	return s.queue.List()
}

// SortQueue sorts by a key given as text: a key name or a menu number.
func (s *Session) SortQueue(key string) error {
	sortKey, err := queue.ParseSortKey(key)
	if err == nil {
		err = s.queue.SortBy(sortKey)
	}
	if err != nil {
		s.logger.Info("sort rejected", logging.Args(
			logging.String("key", key),
			logging.String(logging.FieldErrorKind, queue.Kind(err)),
		)...)
		return err
	}
	s.logger.Info("queue sorted", logging.Args(logging.String("key", string(sortKey)))...)
	return nil
}

// SearchShow returns the first show titled exactly title.
func (s *Session) SearchShow(title string) (queue.Show, bool) {
	return s.queue.Search(title)
}

// SuggestTitles returns up to three queued titles that share words with
// title, closest first. It is meant for reporting a failed exact search.
func (s *Session) SuggestTitles(title string) []string {
	entries := s.queue.List()
	candidates := make([]string, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, entry.Show.Title)
	}
	matches := textutil.ClosestMatches(title, candidates, suggestionThreshold, suggestionLimit)
	titles := make([]string, 0, len(matches))
	for _, match := range matches {
		titles = append(titles, match.Title)
	}
	return titles
}

// SaveQueue writes the queue to the configured store, or to a text file at
// path when path is not empty.
func (s *Session) SaveQueue(ctx context.Context, path string) error {
	target := s.storeFor(path)
	if path != "" {
		defer target.Close()
	}
	logger := s.contextLogger(ctx)
	if err := target.Save(ctx, s.queue.Shows()); err != nil {
		logger.Error("queue save failed", logging.Args(
			logging.String(logging.FieldPath, target.Location()),
			logging.String(logging.FieldErrorKind, queue.Kind(err)),
			logging.Error(err),
		)...)
		return err
	}
	logger.Info("queue saved", logging.Args(
		logging.String(logging.FieldPath, target.Location()),
		logging.Int(logging.FieldCount, s.queue.Len()),
	)...)
	return nil
}

// LoadQueue replaces the queue with the contents of the configured store, or
// of a text file at path when path is not empty. A missing or unreadable
// source leaves the queue empty and is not an error; only cancellation is.
func (s *Session) LoadQueue(ctx context.Context, path string) (storage.LoadResult, error) {
	source := s.storeFor(path)
	if path != "" {
		defer source.Close()
	}
	logger := s.contextLogger(ctx).With(logging.String(logging.FieldPath, source.Location()))

	result, err := source.Load(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return storage.LoadResult{}, err
		}
		logger.Debug("queue source load failed", logging.Args(logging.Error(err))...)
		result = storage.LoadResult{Shows: []queue.Show{}, Unreadable: true}
	}

	s.queue.Replace(result.Shows)

	switch {
	case result.Missing:
		logger.Info("queue source missing; starting empty")
	case result.Unreadable:
		logging.WarnWithContext(logger, "queue source unreadable", "load_failed",
			logging.String(logging.FieldImpact, "starting with an empty queue"),
		)
	}
	if result.Skipped > 0 {
		logger.Debug("skipped malformed lines", logging.Args(logging.Int("skipped", result.Skipped))...)
	}
	logger.Info("queue loaded", logging.Args(logging.Int(logging.FieldCount, result.Loaded()))...)
	return result, nil
}

func (s *Session) storeFor(path string) storage.Store {
	if path == "" {
		return s.store
	}
	return storage.NewTextStore(path, false)
}

func (s *Session) logRejected(msg, title string, err error) {
	s.logger.Info(msg, logging.Args(
		logging.String(logging.FieldTitle, title),
		logging.String(logging.FieldErrorKind, queue.Kind(err)),
		logging.Error(err),
	)...)
}
