package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := Default()
	cfg.DefaultSession = "work"
	cfg.Simulation.ReplyAfter = Duration{750 * time.Millisecond}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultSession != "work" {
		t.Errorf("DefaultSession = %q, want %q", loaded.DefaultSession, "work")
	}
	if loaded.Simulation.ReplyAfter.Duration != 750*time.Millisecond {
		t.Errorf("ReplyAfter = %v, want 750ms", loaded.Simulation.ReplyAfter)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_session = \"main\"\n[log]\nlevel = \"debug\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.API.BaseURL != DefaultAPIBaseURL {
		t.Errorf("API.BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.Simulation.SentAfter.Duration != time.Second {
		t.Errorf("SentAfter = %v, want 1s", cfg.Simulation.SentAfter)
	}
	if !cfg.Notifications.Enabled {
		t.Error("notifications should default to enabled")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadOrDefaultAppliesEnv(t *testing.T) {
	t.Setenv("BAATCHIT_API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("BAATCHIT_REPLY_AFTER", "20ms")
	t.Setenv("BAATCHIT_NOTIFICATIONS", "false")
	t.Setenv("BAATCHIT_API_TIMEOUT", "not-a-duration")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Simulation.ReplyAfter.Duration != 20*time.Millisecond {
		t.Errorf("ReplyAfter = %v, want 20ms", cfg.Simulation.ReplyAfter)
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should be disabled by env")
	}
	if cfg.API.Timeout.Duration != 10*time.Second {
		t.Errorf("Timeout = %v, want default 10s for bad env value", cfg.API.Timeout)
	}
}

func TestLoadOrDefaultReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BAATCHIT_LOG_LEVEL=warn\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BAATCHIT_LOG_LEVEL", "")
	_ = os.Unsetenv("BAATCHIT_LOG_LEVEL")

	cfg, err := LoadOrDefault(filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn from .env", cfg.Log.Level)
	}
}

func TestLoadOrDefaultRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbase_url = "), 0600); err != nil {
		t.Fatal(err)
	}
	if cfg, err := LoadOrDefault(path); err == nil {
		t.Errorf("LoadOrDefault(broken) = %+v, want parse error", cfg)
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, &Config{DefaultSession: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	perm := info.Mode().Perm()
	if perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
