// Package config_test tests configuration loading and validation.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akiratakt/dawnfm/internal/config"
)

// TestLoadMissingRequired verifies that validation rejects a config without
// the required credentials.
func TestLoadMissingRequired(t *testing.T) {
	if _, err := config.Load(""); err == nil {
		t.Fatal("expected validation error without token and secret")
	}
}

// TestLoadFromEnv verifies environment variables satisfy the required
// fields and defaults fill the rest.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BOT_EXPORT_SECRET", "hunter2")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Telegram.Token != "123:abc" {
		t.Errorf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Export.Secret != "hunter2" {
		t.Errorf("secret = %q", cfg.Export.Secret)
	}
	if cfg.Server.ListenAddr == "" {
		t.Error("listen addr default missing")
	}
	if cfg.Log.Level == "" {
		t.Error("log level default missing")
	}
	if cfg.Scheduler.MaintenanceCron == "" {
		t.Error("maintenance cron default missing")
	}
	if cfg.Messages.Welcome == "" || cfg.Messages.Help == "" || cfg.Messages.GeneralError == "" {
		t.Error("message defaults missing")
	}
}

// TestLoadFromFile verifies YAML values layer over defaults and environment
// variables override the file.
func TestLoadFromFile(t *testing.T) {
	t.Setenv("BOT_EXPORT_SECRET", "env-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
telegram:
  token: "123:abc"
export:
  secret: "file-secret"
server:
  listen_addr: ":9090"
log:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("listen addr = %q, want %q", cfg.Server.ListenAddr, ":9090")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Export.Secret != "env-secret" {
		t.Errorf("env override lost: secret = %q", cfg.Export.Secret)
	}
}

// TestLoadRejectsBadLevel verifies enum validation on the log level.
func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BOT_EXPORT_SECRET", "hunter2")
	t.Setenv("BOT_LOG_LEVEL", "loud")

	if _, err := config.Load(""); err == nil {
		t.Fatal("expected validation error for invalid log level")
	}
}

// TestLoadMissingFileTolerated verifies a nonexistent config path falls back
// to defaults plus environment.
func TestLoadMissingFileTolerated(t *testing.T) {
	t.Setenv("BOT_TELEGRAM_TOKEN", "123:abc")
	t.Setenv("BOT_EXPORT_SECRET", "hunter2")

	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err != nil {
		t.Fatalf("Load failed for absent file: %v", err)
	}
}
