package storage

import (
	"context"
	"database/sql"
)

// ExecForTest runs a raw statement against the store's database.
func ExecForTest(s *SQLiteStore, ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}
