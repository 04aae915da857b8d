package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for countdowntab, stored in
// ~/.countdowntab/config.json. The file supports single-line // comments for
// documentation purposes.
type Config struct {
	// SyncDir is the synchronized storage tier root, typically a folder kept
	// in sync across devices by an external service. Empty disables the tier
	// and every operation falls through to local storage.
	SyncDir string `json:"sync_dir"`
	// PageSize is the number of events shown per page.
	PageSize int `json:"page_size"`
	// RefreshSeconds is the watch-surface redraw interval.
	RefreshSeconds int `json:"refresh_seconds"`
}

const (
	// DefaultPageSize matches the reference surface's eight items per page.
	DefaultPageSize = 8
	// DefaultRefreshSeconds keeps displayed countdowns at most a minute stale.
	DefaultRefreshSeconds = 60
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		SyncDir:        "",
		PageSize:       DefaultPageSize,
		RefreshSeconds: DefaultRefreshSeconds,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// countdowntab configuration – ~/.countdowntab/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise countdowntab behaviour.
{
  // Root directory of the synchronized storage tier, e.g. a Dropbox or
  // Nextcloud folder replicated across your devices. Leave empty to keep all
  // data in local storage only. When the directory is set but unavailable,
  // operations fall back to local storage transparently.
  "sync_dir": "",

  // Events shown per page in list and watch output.
  "page_size": 8,

  // Seconds between countdown refreshes while "countdowntab watch" is open.
  "refresh_seconds": 60
}
`

// BaseDir returns the root data directory (~/.countdowntab).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".countdowntab"), nil
}

// configFilePath returns the path to ~/.countdowntab/config.json.
func configFilePath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.countdowntab/config.json, creating it with annotated defaults
// on first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.RefreshSeconds <= 0 {
		cfg.RefreshSeconds = DefaultRefreshSeconds
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
