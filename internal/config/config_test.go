package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/avelis/countdowntab/internal/config"
)

func TestLoadFirstRunWritesTemplate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != config.DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.PageSize, config.DefaultPageSize)
	}
	if cfg.RefreshSeconds != config.DefaultRefreshSeconds {
		t.Errorf("RefreshSeconds = %d, want %d", cfg.RefreshSeconds, config.DefaultRefreshSeconds)
	}
	if cfg.SyncDir != "" {
		t.Errorf("SyncDir = %q, want empty", cfg.SyncDir)
	}

	// The annotated template is created so users can discover options, and it
	// must parse back on the next load despite its // comment lines.
	path := filepath.Join(home, ".countdowntab", "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}
	if _, err := config.Load(); err != nil {
		t.Errorf("Load of written template: %v", err)
	}
}

func TestLoadFillsPartialConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".countdowntab")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := `// partial config
{
  "sync_dir": "/mnt/dropbox"
}
`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SyncDir != "/mnt/dropbox" {
		t.Errorf("SyncDir = %q", cfg.SyncDir)
	}
	if cfg.PageSize != config.DefaultPageSize || cfg.RefreshSeconds != config.DefaultRefreshSeconds {
		t.Errorf("defaults not filled: %+v", cfg)
	}
}

func TestLoadRejectsBrokenJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".countdowntab")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load()
	if err == nil {
		t.Fatal("expected error for broken config")
	}
	// Callers still get usable defaults.
	if cfg.PageSize != config.DefaultPageSize {
		t.Errorf("PageSize = %d, want default", cfg.PageSize)
	}
}
