package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"streamsort/internal/config"
	"streamsort/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	queueFile  string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	base := testsupport.BaseDir(cfg)
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv(config.QueueFileEnv, "")

	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		queueFile:  cfg.Paths.QueueFile,
		baseDir:    base,
	}
}

// run executes the CLI against the environment's config with empty stdin.
func (e *cliTestEnv) run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return runCLI(t, strings.NewReader(""), args, e.configPath)
}

func runCLI(t *testing.T, stdin io.Reader, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[paths]\nqueue_file = %q\nlog_dir = %q\n\n[storage]\nbackend = %q\nsqlite_path = %q\nbackup = %t\n",
		cfg.Paths.QueueFile,
		cfg.Paths.LogDir,
		cfg.Storage.Backend,
		cfg.Storage.SQLitePath,
		cfg.Storage.Backup,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireOrder(t *testing.T, output string, substrs ...string) {
	t.Helper()
	offset := 0
	for _, substr := range substrs {
		idx := strings.Index(output[offset:], substr)
		if idx < 0 {
			t.Fatalf("expected %q in order %q within %q", substr, substrs, output)
		}
		offset += idx + len(substr)
	}
}
