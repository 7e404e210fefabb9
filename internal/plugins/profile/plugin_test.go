package profile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/placenotes/internal/kv"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/state"
	"github.com/marcus/placenotes/internal/styles"
)

func newTestPlugin(t *testing.T, seed []notes.Note) (*Plugin, kv.Store) {
	t.Helper()
	ctx := context.Background()
	backing, err := kv.OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(seed)
	if err := backing.Set(ctx, notes.StorageKey, data); err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ns, err := notes.Open(ctx, backing, logger)
	if err != nil {
		t.Fatal(err)
	}
	prefs, err := state.Load(ctx, backing)
	if err != nil {
		t.Fatal(err)
	}
	p := New()
	if err := p.Init(&plugin.Context{Logger: logger, Notes: ns, Prefs: prefs}); err != nil {
		t.Fatal(err)
	}
	return p, backing
}

func TestStats(t *testing.T) {
	p, _ := newTestPlugin(t, []notes.Note{
		{ID: "a", Content: "{@}[Canon](1) and {@}[Rob Roy](9)", IsPrivate: true},
		{ID: "b", Content: "  • {@}[Canon](1)"},
		{ID: "c", Content: "nothing"},
	})
	want := Stats{Lists: 3, Private: 1, Mentions: 3, Places: 2}
	if p.stats != want {
		t.Errorf("stats = %+v, want %+v", p.stats, want)
	}
	if view := p.View(60, 20); !strings.Contains(view, "Dark") {
		t.Errorf("view missing theme mode:\n%s", view)
	}
}

func TestToggleTheme(t *testing.T) {
	t.Cleanup(func() { styles.ApplyTheme(styles.DarkThemeName) })
	p, backing := newTestPlugin(t, []notes.Note{})

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if cmd == nil {
		t.Fatal("expected theme change command")
	}
	changed, ok := cmd().(msg.ThemeChangedMsg)
	if !ok || changed.Dark {
		t.Fatalf("expected light mode, got %+v", changed)
	}
	if styles.GetCurrentTheme().Name != styles.LightThemeName {
		t.Errorf("current theme = %q", styles.GetCurrentTheme().Name)
	}

	data, err := backing.Get(context.Background(), state.ThemeModeKey)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "false" {
		t.Errorf("stored theme mode = %s", data)
	}
}
