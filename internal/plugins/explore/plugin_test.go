package explore

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
	"github.com/marcus/placenotes/internal/typeahead"
)

var testPlaces = []typeahead.Suggestion{
	{ID: "1", Name: "Canon", Address: "928 12th Ave"},
	{ID: "2", Name: "Rob Roy", Address: "2332 2nd Ave"},
	{ID: "3", Name: "Zig Zag Café", Address: "1501 Western Ave"},
}

func newTestPlugin(t *testing.T, seed []notes.Note) (*Plugin, *notes.Store) {
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
	p := New()
	if err := p.Init(&plugin.Context{Logger: logger, Notes: ns, Places: testPlaces}); err != nil {
		t.Fatal(err)
	}
	return p, ns
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFilter(t *testing.T) {
	p, _ := newTestPlugin(t, []notes.Note{})
	if len(p.results) != 3 {
		t.Fatalf("expected all places, got %d", len(p.results))
	}

	p.Update(keyRunes("/"))
	if !p.ConsumesTextInput() {
		t.Fatal("expected filter mode")
	}
	for _, r := range "ro" {
		p.Update(keyRunes(string(r)))
	}
	if len(p.results) != 1 || p.results[0].ID != "2" {
		t.Errorf("results = %+v, want Rob Roy", p.results)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.ConsumesTextInput() || len(p.results) != 3 {
		t.Errorf("esc should clear the filter, got %d results", len(p.results))
	}
}

func TestFilterKeepsCursorInRange(t *testing.T) {
	p, _ := newTestPlugin(t, []notes.Note{})
	p.Update(keyRunes("G"))
	if p.cursor != 2 {
		t.Fatalf("cursor = %d", p.cursor)
	}
	p.Update(keyRunes("/"))
	p.Update(keyRunes("z"))
	if p.cursor != 0 {
		t.Errorf("cursor = %d, want 0", p.cursor)
	}
}

func TestUsageCounts(t *testing.T) {
	seed := []notes.Note{
		{ID: "a", Title: "Bars", Content: "  • {@}[Canon](1)\n  • {@}[Canon](1) again"},
		{ID: "b", Title: "Date", Content: "{@}[Canon](1) then {@}[Rob Roy](2)"},
	}
	p, ns := newTestPlugin(t, seed)
	if p.usage["1"] != 2 || p.usage["2"] != 1 || p.usage["3"] != 0 {
		t.Errorf("usage = %v", p.usage)
	}

	if err := ns.Delete(context.Background(), "b"); err != nil {
		t.Fatal(err)
	}
	p.Update(msg.NotesChangedMsg{})
	if p.usage["1"] != 1 || p.usage["2"] != 0 {
		t.Errorf("usage after delete = %v", p.usage)
	}

	view := p.View(60, 20)
	if !strings.Contains(view, "in 1 list") {
		t.Errorf("view missing usage:\n%s", view)
	}
}
