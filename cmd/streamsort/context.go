package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"streamsort/internal/config"
	"streamsort/internal/logging"
	"streamsort/internal/session"
	"streamsort/internal/storage"
)

type commandContext struct {
	configFlag *string
	fileFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, fileFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		fileFlag:   fileFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if c.fileFlag != nil && strings.TrimSpace(*c.fileFlag) != "" {
			if err := cfg.SetQueueFile(*c.fileFlag); err != nil {
				c.configErr = fmt.Errorf("resolve --file: %w", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// withSession opens the configured store, locks it, loads the queue and
// hands the session to fn. The lock and store are released afterwards.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(context.Context, *session.Session) error) (err error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	store, err := storage.Open(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open queue store: %w", err)
	}
	sess := session.New(store, logger)
	defer func() {
		if closeErr := sess.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if err := sess.Lock(); err != nil {
		return err
	}
	ctx := sess.Context(cmd.Context())
	if _, err := sess.LoadQueue(ctx, ""); err != nil {
		return err
	}
	return fn(ctx, sess)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
