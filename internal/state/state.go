// Package state holds persistent user preferences kept in the local
// key-value store next to the notes.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/marcus/placenotes/internal/kv"
)

// ThemeModeKey stores the dark mode flag as a JSON boolean.
const ThemeModeKey = "theme_mode"

// State holds persistent user preferences.
type State struct {
	DarkMode bool
}

func defaults() State {
	return State{DarkMode: true}
}

// Prefs reads and writes State through a kv.Store.
type Prefs struct {
	store kv.Store

	mu      sync.RWMutex
	current State
}

// Option customizes Load.
type Option func(*State)

// WithDarkDefault sets the theme mode used until the user toggles it.
func WithDarkDefault(dark bool) Option {
	return func(s *State) { s.DarkMode = dark }
}

// Load reads preferences from store. Missing keys use defaults. An
// unreadable value is reported alongside usable defaults.
func Load(ctx context.Context, store kv.Store, opts ...Option) (*Prefs, error) {
	p := &Prefs{store: store, current: defaults()}
	for _, opt := range opts {
		opt(&p.current)
	}

	data, err := store.Get(ctx, ThemeModeKey)
	if errors.Is(err, kv.ErrNotFound) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("load %s: %w", ThemeModeKey, err)
	}

	var dark bool
	if err := json.Unmarshal(data, &dark); err != nil {
		return p, fmt.Errorf("load %s: %w", ThemeModeKey, err)
	}
	p.current.DarkMode = dark
	return p, nil
}

// Get returns a copy of the current preferences.
func (p *Prefs) Get() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// DarkMode returns the saved theme mode.
func (p *Prefs) DarkMode() bool {
	return p.Get().DarkMode
}

// SetDarkMode saves the theme mode. The in-memory value changes even when
// the write fails so the session keeps the user's choice.
func (p *Prefs) SetDarkMode(ctx context.Context, dark bool) error {
	p.mu.Lock()
	p.current.DarkMode = dark
	p.mu.Unlock()

	data, err := json.Marshal(dark)
	if err != nil {
		return err
	}
	if err := p.store.Set(ctx, ThemeModeKey, data); err != nil {
		return fmt.Errorf("save %s: %w", ThemeModeKey, err)
	}
	return nil
}

// ToggleTheme flips and saves the theme mode, returning the new value.
func (p *Prefs) ToggleTheme(ctx context.Context) (bool, error) {
	dark := !p.DarkMode()
	return dark, p.SetDarkMode(ctx, dark)
}
