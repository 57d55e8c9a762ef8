package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"streamsort/internal/config"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogFileName is the file NewFromConfig appends to under the log directory.
const LogFileName = "streamsort.log"

// Options selects the handler, level and destination of a logger.
type Options struct {
	// Level is debug, info, warn or error. Anything else means info.
	Level string
	// Format is FormatConsole (the default) or FormatJSON.
	Format string
	// Path is the file to append to. Empty means stderr.
	Path string
}

// New builds a logger from opts. Debug loggers also record the caller.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	addSource := level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatConsole
	}
	if format != FormatConsole && format != FormatJSON {
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	w, err := openOutput(opts.Path)
	if err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return slog.New(newJSONHandler(w, level, addSource)), nil
	}
	return slog.New(newConsoleHandler(w, level, addSource)), nil
}

// NewFromConfig builds the application logger. It writes only to
// <log_dir>/streamsort.log so command output on stdout stays clean.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{})
	}
	opts := Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if dir := strings.TrimSpace(cfg.Paths.LogDir); dir != "" {
		opts.Path = filepath.Join(dir, LogFileName)
	}
	return New(opts)
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func openOutput(path string) (io.Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return file, nil
}
