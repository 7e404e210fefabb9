package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Driver != DriverSQLite3 {
		t.Errorf("got driver %q, want %q", cfg.Storage.Driver, DriverSQLite3)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Errorf("got theme %q, want dark", cfg.UI.Theme)
	}
	if !cfg.Enabled(FlagEmojiPicker) || !cfg.Enabled(FlagHintText) {
		t.Error("feature flags should default on")
	}
	if cfg.Enabled("nope") {
		t.Error("unknown flag should be off")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Fatal("should return default config")
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".local/share/placenotes"); cfg.Storage.Path != want {
		t.Errorf("got path %q, want %q", cfg.Storage.Path, want)
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"storage": {"driver": "file", "path": "/tmp/pn"},
		"ui": {"theme": "Light"},
		"places": {"file": "~/places.yaml"},
		"log": {"level": "debug"},
		"features": {"flags": {"hintText": false}}
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Storage.Driver != DriverFile {
		t.Errorf("got driver %q, want file", cfg.Storage.Driver)
	}
	if cfg.StoreLocation() != "/tmp/pn/kv" {
		t.Errorf("got store location %q", cfg.StoreLocation())
	}
	if cfg.LogPath() != "/tmp/pn/placenotes.log" {
		t.Errorf("got log path %q", cfg.LogPath())
	}
	if cfg.UI.Theme != ThemeLight {
		t.Errorf("got theme %q, want light", cfg.UI.Theme)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "places.yaml"); cfg.Places.File != want {
		t.Errorf("got places file %q, want %q", cfg.Places.File, want)
	}
	if cfg.LogLevel() != slog.LevelDebug {
		t.Errorf("got level %v, want debug", cfg.LogLevel())
	}
	if cfg.Enabled(FlagHintText) {
		t.Error("hintText should be disabled")
	}
	// Default values should still be present
	if !cfg.Enabled(FlagEmojiPicker) {
		t.Error("emojiPicker should still be enabled (default)")
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{invalid`)

	if _, err := LoadFrom(path); err == nil {
		t.Error("should error on invalid JSON")
	}
}

func TestLoadFrom_UnknownDriver(t *testing.T) {
	path := writeConfig(t, `{"storage": {"driver": "postgres"}}`)

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("got %v, want ErrInvalid", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input  string
		expect string
	}{
		{"~/.local/share/placenotes", filepath.Join(home, ".local/share/placenotes")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tc := range tests {
		got := ExpandPath(tc.input)
		if got != tc.expect {
			t.Errorf("ExpandPath(%q) = %q, want %q", tc.input, got, tc.expect)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"modernc driver", func(c *Config) { c.Storage.Driver = DriverSQLite }, false},
		{"bad driver", func(c *Config) { c.Storage.Driver = "bolt" }, true},
		{"empty path", func(c *Config) { c.Storage.Path = " " }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidate_UnknownThemeFallsBack(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "solarized"

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
	if cfg.UI.Theme != ThemeDark {
		t.Errorf("got %q, want dark after validation", cfg.UI.Theme)
	}
}
