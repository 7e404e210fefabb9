package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Storage drivers accepted in storage.driver.
const (
	DriverSQLite3 = "sqlite3"
	DriverSQLite  = "sqlite"
	DriverFile    = "file"
)

// Theme names accepted in ui.theme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Feature flags.
const (
	FlagEmojiPicker = "emojiPicker"
	FlagHintText    = "hintText"
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Config is the root configuration structure.
type Config struct {
	Storage  StorageConfig  `json:"storage"`
	UI       UIConfig       `json:"ui"`
	Places   PlacesConfig   `json:"places"`
	Log      LogConfig      `json:"log"`
	Features FeaturesConfig `json:"features"`
}

// StorageConfig selects the key-value backend.
type StorageConfig struct {
	Driver string `json:"driver"` // sqlite3, sqlite or file
	Path   string `json:"path"`   // data directory (supports ~ expansion)
}

// UIConfig configures UI appearance.
type UIConfig struct {
	Theme string `json:"theme"` // initial theme until the user toggles it
}

// PlacesConfig points at an optional YAML file replacing the built-in places.
type PlacesConfig struct {
	File string `json:"file,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `json:"level"`
}

// FeaturesConfig holds feature flag settings.
type FeaturesConfig struct {
	Flags map[string]bool `json:"flags"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverSQLite3,
			Path:   "~/.local/share/placenotes",
		},
		UI: UIConfig{
			Theme: ThemeDark,
		},
		Log: LogConfig{
			Level: "info",
		},
		Features: FeaturesConfig{
			Flags: map[string]bool{
				FlagEmojiPicker: true,
				FlagHintText:    true,
			},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case DriverSQLite3, DriverSQLite, DriverFile:
	default:
		errs = append(errs, fmt.Errorf("%w: storage.driver %q", ErrInvalid, c.Storage.Driver))
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: storage.path is empty", ErrInvalid))
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if c.UI.Theme != ThemeDark && c.UI.Theme != ThemeLight {
		c.UI.Theme = ThemeDark
	}
	return errors.Join(errs...)
}

// Enabled reports whether a feature flag is on. Unknown flags are off.
func (c *Config) Enabled(flag string) bool {
	return c.Features.Flags[flag]
}

// LogLevel returns the configured slog level, info if unparseable.
func (c *Config) LogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// StoreLocation returns what the storage driver opens: a database file for
// the sqlite drivers, a directory for the file driver.
func (c *Config) StoreLocation() string {
	if c.Storage.Driver == DriverFile {
		return filepath.Join(c.Storage.Path, "kv")
	}
	return filepath.Join(c.Storage.Path, "placenotes.db")
}

// LogPath returns the log file used while the TUI owns the terminal.
func (c *Config) LogPath() string {
	return filepath.Join(c.Storage.Path, "placenotes.log")
}
