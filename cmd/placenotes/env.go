package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marcus/placenotes/internal/config"
	"github.com/marcus/placenotes/internal/kv"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/places"
	"github.com/marcus/placenotes/internal/state"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/typeahead"
)

// env holds the services shared by the TUI and the subcommands.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  kv.Store
	notes  *notes.Store
	prefs  *state.Prefs
	places []typeahead.Suggestion

	closers []io.Closer
}

// openEnv loads config and opens storage. Logs go to logOut, or to the log
// file next to the data when logOut is nil.
func openEnv(ctx context.Context, logOut io.Writer) (*env, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	e := &env{cfg: cfg}
	if logOut == nil {
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		e.closers = append(e.closers, f)
		logOut = f
	}
	level := cfg.LogLevel()
	if debugFlag {
		level = slog.LevelDebug
	}
	e.logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	e.store, err = kv.Open(cfg.Storage.Driver, cfg.StoreLocation())
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	e.closers = append(e.closers, e.store)

	// Unreadable preferences fall back to defaults.
	e.prefs, err = state.Load(ctx, e.store, state.WithDarkDefault(cfg.UI.Theme != config.ThemeLight))
	if err != nil {
		e.logger.Warn("preferences unreadable, using defaults", "error", err)
	}
	styles.ApplyTheme(styles.ForMode(e.prefs.DarkMode()))

	e.places, err = places.Load(cfg.Places.File)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load places: %w", err)
	}

	e.notes, err = notes.Open(ctx, e.store, e.logger)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.logger.Debug("storage opened", "driver", cfg.Storage.Driver, "location", cfg.StoreLocation(), "notes", e.notes.Len())
	return e, nil
}

// Close releases the store and log file in reverse order.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i].Close())
	}
	e.closers = nil
	return errors.Join(errs...)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
