package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configDir  = ".config/placenotes"
	configFile = "config.json"
)

// rawConfig is the JSON-unmarshaling intermediary.
type rawConfig struct {
	Storage  rawStorageConfig `json:"storage"`
	UI       UIConfig         `json:"ui"`
	Places   PlacesConfig     `json:"places"`
	Log      LogConfig        `json:"log"`
	Features FeaturesConfig   `json:"features"`
}

type rawStorageConfig struct {
	Driver string `json:"driver"`
	Path   string `json:"path"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path.
// If path is empty, uses ~/.config/placenotes/config.json
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, err
		default:
			var raw rawConfig
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
			mergeConfig(cfg, &raw)
		}
	}

	cfg.Storage.Path = ExpandPath(cfg.Storage.Path)
	cfg.Places.File = ExpandPath(cfg.Places.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig merges raw config values into the config.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.Storage.Driver != "" {
		cfg.Storage.Driver = raw.Storage.Driver
	}
	if raw.Storage.Path != "" {
		cfg.Storage.Path = raw.Storage.Path
	}

	if raw.UI.Theme != "" {
		cfg.UI.Theme = strings.ToLower(raw.UI.Theme)
	}

	if raw.Places.File != "" {
		cfg.Places.File = raw.Places.File
	}

	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}

	for k, v := range raw.Features.Flags {
		cfg.Features.Flags[k] = v
	}
}

// ExpandPath expands ~ to home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	if testConfigPath != "" {
		return testConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}

var testConfigPath string

// SetTestConfigPath redirects ConfigPath for tests.
func SetTestConfigPath(path string) { testConfigPath = path }

// ResetTestConfigPath undoes SetTestConfigPath.
func ResetTestConfigPath() { testConfigPath = "" }
