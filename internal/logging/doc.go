// Package logging assembles structured slog loggers and formatting helpers used
// across StreamSort.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so session code can tag log
// lines with its session ID. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// Loggers built from config write to a file under the log directory. Command
// output belongs on the command's stdout, not in the log.
package logging
