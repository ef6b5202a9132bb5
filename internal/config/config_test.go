//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"tilde with nested path", "~/.local/share/f.db", filepath.Join(home, ".local", "share", "f.db")},
		{"absolute path unchanged", "/var/lib/f.db", "/var/lib/f.db"},
		{"relative path unchanged", "data/f.db", "data/f.db"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml
	if last := paths[len(paths)-1]; last != "config.toml" {
		t.Errorf("last config path = %q, want %q", last, "config.toml")
	}
}

func TestLoadFrom_MissingFiles(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Database != "" || cfg.Icons != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
	if !cfg.MPRISEnabled() {
		t.Error("MPRIS should default to enabled")
	}
	if cfg.NotificationsEnabled() {
		t.Error("notifications should default to disabled")
	}
	if cfg.GetVolumeStep() != defaultVolumeStep {
		t.Errorf("GetVolumeStep() = %v, want %v", cfg.GetVolumeStep(), defaultVolumeStep)
	}
	if cfg.GetLogLevel() != "info" {
		t.Errorf("GetLogLevel() = %q, want info", cfg.GetLogLevel())
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
database = "~/frequency/test.db"
icons = "unicode"
log_level = "DEBUG"
legacy_playlist_title = "  Old Mix  "
volume_step = 0.1
mpris = false
notifications = true
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "frequency", "test.db"); cfg.Database != want {
		t.Errorf("Database = %q, want %q", cfg.Database, want)
	}
	if cfg.Icons != "unicode" {
		t.Errorf("Icons = %q, want unicode", cfg.Icons)
	}
	if cfg.GetLogLevel() != "debug" {
		t.Errorf("GetLogLevel() = %q, want debug", cfg.GetLogLevel())
	}
	if cfg.LegacyPlaylistTitle != "Old Mix" {
		t.Errorf("LegacyPlaylistTitle = %q, want trimmed", cfg.LegacyPlaylistTitle)
	}
	if cfg.GetVolumeStep() != 0.1 {
		t.Errorf("GetVolumeStep() = %v, want 0.1", cfg.GetVolumeStep())
	}
	if cfg.MPRISEnabled() {
		t.Error("MPRIS should be disabled")
	}
	if !cfg.NotificationsEnabled() {
		t.Error("notifications should be enabled")
	}
}

func TestLoadFrom_LaterFilesOverride(t *testing.T) {
	user := writeConfig(t, t.TempDir(), `icons = "nerd"
log_level = "warn"`)
	local := writeConfig(t, t.TempDir(), `icons = "none"`)

	cfg, err := LoadFrom(user, local)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Icons != "none" {
		t.Errorf("Icons = %q, want none", cfg.Icons)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn from the first file", cfg.LogLevel)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "invalid = [[[")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestGetVolumeStep_OutOfRange(t *testing.T) {
	for _, step := range []float64{-1, 0, 0.75} {
		cfg := &Config{VolumeStep: step}
		if got := cfg.GetVolumeStep(); got != defaultVolumeStep {
			t.Errorf("GetVolumeStep() with %v = %v, want default", step, got)
		}
	}
}

func TestLoad_ReadsWorkingDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not change to temp directory: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	writeConfig(t, tmpDir, `icons = "none"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// ./config.toml has the highest priority
	if cfg.Icons != "none" {
		t.Errorf("Icons = %q, want none", cfg.Icons)
	}
}
