// Package config loads, normalizes, and validates StreamSort configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the STREAMSORT_QUEUE_FILE environment fallback. The
// Config type gathers every knob the CLI needs: where the queue lives, which
// storage backend persists it, and how logs are written.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
