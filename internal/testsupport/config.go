package testsupport

import (
	"path/filepath"
	"testing"

	"streamsort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.QueueFile = filepath.Join(base, "queue.txt")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Storage.SQLitePath = filepath.Join(base, "data", "queue.db")

	builder := &configBuilder{cfg: &cfgVal}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSQLite switches the test config to the SQLite backend.
func WithSQLite() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backend = config.BackendSQLite
	}
}

// WithBackup enables queue file backups on save.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Storage.Backup = true
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.QueueFile)
}
