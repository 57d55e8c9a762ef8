package config

const (
	defaultQueueFile  = "queue.txt"
	defaultLogDir     = "~/.local/share/streamsort/logs"
	defaultBackend    = BackendText
	defaultSQLitePath = "~/.local/share/streamsort/queue.db"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"

	// QueueFileEnv names the environment variable that supplies the queue file
	// when the config leaves it empty.
	QueueFileEnv = "STREAMSORT_QUEUE_FILE"
)

// Storage backends understood by Storage.Backend.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Storage: Storage{
			Backend:    defaultBackend,
			SQLitePath: defaultSQLitePath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
