package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	c.Paths.QueueFile = strings.TrimSpace(c.Paths.QueueFile)
	if c.Paths.QueueFile == "" {
		if value, ok := os.LookupEnv(QueueFileEnv); ok {
			c.Paths.QueueFile = strings.TrimSpace(value)
		}
	}
	if c.Paths.QueueFile == "" {
		c.Paths.QueueFile = defaultQueueFile
	}
	if c.Paths.QueueFile, err = expandPath(c.Paths.QueueFile); err != nil {
		return fmt.Errorf("paths.queue_file: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStorage() error {
	var err error
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if strings.TrimSpace(c.Storage.SQLitePath) == "" {
		c.Storage.SQLitePath = defaultSQLitePath
	}
	if c.Storage.SQLitePath, err = expandPath(c.Storage.SQLitePath); err != nil {
		return fmt.Errorf("storage.sqlite_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
