package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"streamsort/internal/queue"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
// Users will need to delete their queue database after schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// SQLiteStore keeps the queue in a SQLite database, one row per show.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite initializes or connects to the queue database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Location returns the database path.
func (s *SQLiteStore) Location() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads all shows in position order.
func (s *SQLiteStore) Load(ctx context.Context) (LoadResult, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT title, genre, episodes, rating FROM shows ORDER BY position")
	if err != nil {
		return LoadResult{}, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	result := LoadResult{Shows: []queue.Show{}}
	for rows.Next() {
		var show queue.Show
		if err := rows.Scan(&show.Title, &show.Genre, &show.Episodes, &show.Rating); err != nil {
			return LoadResult{}, fmt.Errorf("scan show: %w", err)
		}
		result.Shows = append(result.Shows, show)
	}
	if err := rows.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("iterate shows: %w", err)
	}
	return result, nil
}

// Save replaces every row with shows inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, shows []queue.Show) error {
	err := retryOnBusy(ctx, func() error {
		return s.replaceAll(ctx, shows)
	})
	if err != nil {
		return &IOError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}

func (s *SQLiteStore) replaceAll(ctx context.Context, shows []queue.Show) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM shows"); err != nil {
		return fmt.Errorf("clear shows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO shows (position, title, genre, episodes, rating) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, show := range shows {
		if _, err := stmt.ExecContext(ctx, i+1, show.Title, show.Genre, show.Episodes, show.Rating); err != nil {
			return fmt.Errorf("insert show %q: %w", show.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	err = s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		return fmt.Errorf("%w: database %s has version %d, expected %d (delete the database to recreate it)",
			ErrSchemaMismatch, s.path, version, schemaVersion)
	}
	return nil
}

func (s *SQLiteStore) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
