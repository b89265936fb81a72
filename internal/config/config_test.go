package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.Fetch.TimeoutSeconds != 45 {
		t.Errorf("timeout = %d, want 45", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Fetch.Timeout() != 45*time.Second {
		t.Errorf("timeout duration = %s, want 45s", cfg.Fetch.Timeout())
	}
	if cfg.Board.HSEValueHz != 8_000_000 {
		t.Errorf("hse = %d, want 8000000", cfg.Board.HSEValueHz)
	}
	if cfg.Board.Format != "json" {
		t.Errorf("format = %s, want json", cfg.Board.Format)
	}
	if !cfg.Cache.Enabled {
		t.Error("cache should be enabled by default")
	}
}

func TestLoadFromPath(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stm32bridge.yaml")
		content := `version: 1
fetch:
  timeout_seconds: 10
  user_agent: test-agent/2.0
  page_cache_size: 8
cache:
  path: /tmp/specs.db
  enabled: true
board:
  hse_value_hz: 25000000
  format: yaml
  output_dir: out
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, loadedPath, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loadedPath != path {
			t.Errorf("path = %s, want %s", loadedPath, path)
		}
		if cfg.Fetch.TimeoutSeconds != 10 {
			t.Errorf("timeout = %d, want 10", cfg.Fetch.TimeoutSeconds)
		}
		if cfg.Fetch.UserAgent != "test-agent/2.0" {
			t.Errorf("user agent = %s", cfg.Fetch.UserAgent)
		}
		if cfg.Board.HSEValueHz != 25_000_000 {
			t.Errorf("hse = %d, want 25000000", cfg.Board.HSEValueHz)
		}
		if cfg.Board.Format != "yaml" {
			t.Errorf("format = %s, want yaml", cfg.Board.Format)
		}
	})

	t.Run("partial config gets defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stm32bridge.yaml")
		if err := os.WriteFile(path, []byte("cache:\n  path: /tmp/other.db\n"), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, _, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.Cache.Path != "/tmp/other.db" {
			t.Errorf("cache path = %s", cfg.Cache.Path)
		}
		if cfg.Fetch.TimeoutSeconds != 45 {
			t.Errorf("timeout = %d, want default 45", cfg.Fetch.TimeoutSeconds)
		}
		if cfg.Board.Format != "json" {
			t.Errorf("format = %s, want default json", cfg.Board.Format)
		}
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stm32bridge.yaml")
		if err := os.WriteFile(path, []byte("fetch: [not a mapping"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, _, err := LoadFromPath(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, _, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Fetch.TimeoutSeconds = 20
	cfg.Board.HSEValueHz = 16_000_000

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, _, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.Fetch.TimeoutSeconds != 20 {
		t.Errorf("timeout = %d, want 20", loaded.Fetch.TimeoutSeconds)
	}
	if loaded.Board.HSEValueHz != 16_000_000 {
		t.Errorf("hse = %d, want 16000000", loaded.Board.HSEValueHz)
	}
}

func TestFindConfigPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, path)
	if found := FindConfigPath(); found != path {
		t.Errorf("found = %s, want %s", found, path)
	}

	// A dangling env path is skipped, not returned
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	if found := FindConfigPath(); found == path {
		t.Errorf("stale env path returned: %s", found)
	}
}
