package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// saveConfig is the JSON-marshaling intermediary.
type saveConfig struct {
	Storage  StorageConfig  `json:"storage"`
	UI       UIConfig       `json:"ui"`
	Places   PlacesConfig   `json:"places,omitempty"`
	Log      LogConfig      `json:"log"`
	Features FeaturesConfig `json:"features,omitempty"`
}

func toSaveConfig(cfg *Config) saveConfig {
	return saveConfig{
		Storage:  cfg.Storage,
		UI:       cfg.UI,
		Places:   cfg.Places,
		Log:      cfg.Log,
		Features: cfg.Features,
	}
}

// Save writes the config to ~/.config/placenotes/config.json
func Save(cfg *Config) error {
	return SaveTo(cfg, ConfigPath())
}

// SaveTo writes the config to path. Top-level keys this package does not
// manage are carried over from the existing file.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	merged := map[string]json.RawMessage{}
	if existing, err := os.ReadFile(path); err == nil {
		// An unreadable file is replaced wholesale.
		_ = json.Unmarshal(existing, &merged)
	}

	managed, err := json.Marshal(toSaveConfig(cfg))
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(managed, &fields); err != nil {
		return err
	}
	for k, v := range fields {
		merged[k] = v
	}

	data, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
