package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quarry-ml/quarry/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quarry.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
splits = 5
seed = 1234
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if cfg.Splits != 5 {
		t.Fatalf("unexpected splits: %d", cfg.Splits)
	}
	if cfg.Seed != 1234 {
		t.Fatalf("unexpected seed: %d", cfg.Seed)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
seed = 7
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %q", cfg.LogLevel)
	}
	if cfg.Splits != 10 {
		t.Fatalf("unexpected splits: %d", cfg.Splits)
	}
	if cfg.Seed != 7 {
		t.Fatalf("unexpected seed: %d", cfg.Seed)
	}
}

func TestLoadConfigRejectsBadSplits(t *testing.T) {
	path := writeConfig(t, `
splits = 0
`)

	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for splits = 0")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
