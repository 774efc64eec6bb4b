package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Icons        string `koanf:"icons"`         // "nerd", "unicode", or "none"
	ContentFile  string `koanf:"content_file"`  // optional TOML content pack replacing the built-in one
	WatchContent bool   `koanf:"watch_content"` // reload the catalog when content_file changes

	Player        PlayerConfig        `koanf:"player"`
	Log           LogConfig           `koanf:"log"`
	Notifications NotificationsConfig `koanf:"notifications"`
	MPRIS         MPRISConfig         `koanf:"mpris"`
}

// PlayerConfig holds the affirmation player timing.
type PlayerConfig struct {
	Interval       time.Duration `koanf:"interval"`         // time per affirmation (default: 2s)
	SeekRetryDelay time.Duration `koanf:"seek_retry_delay"` // delay before re-issuing a failed seek (default: 500ms)
	Autoplay       bool          `koanf:"autoplay"`         // start playing as soon as the player opens
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Level string `koanf:"level"` // zerolog level name (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/affirm/affirm.log
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Enabled *bool `koanf:"enabled"` // notify when a session finishes (default: true)
}

// MPRISConfig controls the D-Bus media player interface.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // expose play/pause over MPRIS (default: true)
}

const (
	defaultInterval       = 2 * time.Second
	defaultSeekRetryDelay = 500 * time.Millisecond
	minInterval           = 250 * time.Millisecond
)

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads configuration from the given files, in priority order
// (last wins). Missing files are skipped.
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

	if cfg.ContentFile != "" {
		cfg.ContentFile = expandPath(cfg.ContentFile)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/affirm/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "affirm", "config.toml"))
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

// GetPlayerConfig returns the player configuration with defaults applied.
func (c *Config) GetPlayerConfig() PlayerConfig {
	cfg := c.Player

	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Interval < minInterval {
		cfg.Interval = minInterval
	}
	if cfg.SeekRetryDelay <= 0 {
		cfg.SeekRetryDelay = defaultSeekRetryDelay
	}

	return cfg
}

// LogLevel returns the configured log level name, "info" if unset.
func (c *Config) LogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}

// NotificationsEnabled returns true unless notifications were turned off.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// MPRISEnabled returns true unless MPRIS was turned off.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// HasContentFile returns true if a user content pack is configured.
func (c *Config) HasContentFile() bool {
	return c.ContentFile != ""
}
