package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultVolumeStep = 0.05
	defaultLogLevel   = "info"
)

type Config struct {
	Database string `koanf:"database"` // sqlite file, default in $XDG_DATA_HOME/frequency
	Icons    string `koanf:"icons"`    // "nerd", "unicode", or "none"

	LogLevel string `koanf:"log_level"` // zerolog level name (default: info)
	LogFile  string `koanf:"log_file"`  // default in $XDG_STATE_HOME/frequency

	// Title of the playlist created from the legacy single-playlist storage.
	LegacyPlaylistTitle string `koanf:"legacy_playlist_title"`

	VolumeStep float64 `koanf:"volume_step"` // volume change per key press (default: 0.05)

	MPRIS         *bool `koanf:"mpris"`         // expose the player on D-Bus (default: true)
	Notifications *bool `koanf:"notifications"` // desktop notification on track change (default: false)
}

// Load reads the user config then ./config.toml; later files override earlier ones.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database = expandPath(cfg.Database)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.LegacyPlaylistTitle = strings.TrimSpace(cfg.LegacyPlaylistTitle)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/frequency/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "frequency", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetVolumeStep returns the volume step, defaulting when unset or outside (0, 0.5].
func (c *Config) GetVolumeStep() float64 {
	if c.VolumeStep <= 0 || c.VolumeStep > 0.5 {
		return defaultVolumeStep
	}
	return c.VolumeStep
}

// GetLogLevel returns the configured log level name.
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return defaultLogLevel
	}
	return strings.ToLower(c.LogLevel)
}

// MPRISEnabled reports whether the D-Bus media player interface is exposed.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS == nil || *c.MPRIS
}

// NotificationsEnabled reports whether track changes raise desktop notifications.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications != nil && *c.Notifications
}
