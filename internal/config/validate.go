package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.QueueFile == "" {
		return errors.New("paths.queue_file must be set")
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendText:
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path must be set when storage.backend is sqlite")
		}
	default:
		return fmt.Errorf("storage.backend: unsupported value %q (expected %q or %q)", c.Storage.Backend, BackendText, BackendSQLite)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
