package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/placenotes/internal/keymap"
	"github.com/marcus/placenotes/internal/kv"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/ui"
)

// fakePlugin records the messages it receives.
type fakePlugin struct {
	id       string
	focused  bool
	typing   bool
	flushed  int
	received []tea.Msg
}

func (f *fakePlugin) ID() string                    { return f.id }
func (f *fakePlugin) Name() string                  { return strings.ToUpper(f.id) }
func (f *fakePlugin) Icon() string                  { return "*" }
func (f *fakePlugin) Init(*plugin.Context) error    { return nil }
func (f *fakePlugin) Start() tea.Cmd                { return nil }
func (f *fakePlugin) Stop()                         {}
func (f *fakePlugin) View(width, height int) string { return "view of " + f.id }
func (f *fakePlugin) IsFocused() bool               { return f.focused }
func (f *fakePlugin) SetFocused(v bool)             { f.focused = v }
func (f *fakePlugin) FocusContext() string          { return f.id }
func (f *fakePlugin) ConsumesTextInput() bool       { return f.typing }

func (f *fakePlugin) Commands() []plugin.Command {
	return []plugin.Command{{ID: "do", Key: "x", Name: "Do", Context: f.id, Priority: 1}}
}

func (f *fakePlugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	f.received = append(f.received, m)
	return f, nil
}

func (f *fakePlugin) Flush() tea.Cmd {
	f.flushed++
	return func() tea.Msg { return nil }
}

func newTestModel(t *testing.T) (Model, []*fakePlugin, *notes.Store) {
	t.Helper()
	ctx := context.Background()
	backing, err := kv.OpenDir(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ns, err := notes.Open(ctx, backing, logger)
	if err != nil {
		t.Fatal(err)
	}
	pctx := &plugin.Context{Logger: logger, Notes: ns}
	reg := plugin.NewRegistry(pctx)
	fakes := []*fakePlugin{{id: "one"}, {id: "two"}, {id: "three"}}
	for _, f := range fakes {
		if err := reg.Register(f); err != nil {
			t.Fatal(err)
		}
	}
	m := New(reg, keymap.NewRegistry(keymap.DefaultBindings()), pctx, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), fakes, ns
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, message tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(message)
	return next.(Model), cmd
}

func TestTabSwitching(t *testing.T) {
	m, fakes, _ := newTestModel(t)
	if !fakes[0].focused {
		t.Fatal("first tab should start focused")
	}

	m, cmd := send(m, keyRunes("3"))
	if m.activePlugin != 2 || !fakes[2].focused || fakes[0].focused {
		t.Fatalf("expected tab 3 active, got %d", m.activePlugin)
	}
	if _, ok := cmd().(plugin.PluginFocusedMsg); !ok {
		t.Error("expected PluginFocusedMsg")
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activePlugin != 0 {
		t.Errorf("tab should wrap to the first plugin, got %d", m.activePlugin)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.activePlugin != 2 {
		t.Errorf("shift+tab should wrap to the last plugin, got %d", m.activePlugin)
	}
}

func TestTextInputGetsKeys(t *testing.T) {
	m, fakes, _ := newTestModel(t)
	fakes[0].typing = true

	m, _ = send(m, keyRunes("q"))
	if m.quitting {
		t.Fatal("q should reach the plugin while it consumes text")
	}
	m, _ = send(m, keyRunes("2"))
	if m.activePlugin != 0 {
		t.Error("digits should reach the plugin while it consumes text")
	}
	if len(fakes[0].received) != 2 {
		t.Errorf("plugin received %d keys, want 2", len(fakes[0].received))
	}
}

func TestQuitFlushes(t *testing.T) {
	m, fakes, _ := newTestModel(t)
	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Fatal("expected quit sequence")
	}
	for _, f := range fakes {
		if f.flushed != 1 {
			t.Errorf("%s flushed %d times", f.id, f.flushed)
		}
	}
	if _, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC}); cmd != nil {
		t.Error("second quit should be ignored")
	}
}

func TestConfirmOverlay(t *testing.T) {
	m, fakes, _ := newTestModel(t)

	accepted := func() tea.Msg { return "accepted" }
	m, _ = send(m, msg.ConfirmMsg{Dialog: ui.NewConfirmDialog("Delete List", "Sure?"), OnConfirm: accepted})
	if !strings.Contains(m.View(), "Delete List") {
		t.Error("dialog not rendered")
	}

	m, cmd := send(m, keyRunes("n"))
	if cmd != nil || m.confirm != nil {
		t.Error("n should cancel without running the action")
	}

	m, _ = send(m, msg.ConfirmMsg{Dialog: ui.NewConfirmDialog("Delete List", "Sure?"), OnConfirm: accepted})
	m, cmd = send(m, keyRunes("y"))
	if cmd == nil || cmd() != "accepted" {
		t.Error("y should run the confirmed action")
	}
	if m.confirm != nil {
		t.Error("dialog should close")
	}
	for _, r := range fakes[0].received {
		if _, ok := r.(tea.KeyMsg); ok {
			t.Error("keys must not reach the plugin while a dialog is open")
		}
	}
}

func TestStoreChangeReloadsNotes(t *testing.T) {
	m, fakes, ns := newTestModel(t)

	_, cmd := send(m, msg.StoreChangedMsg{Key: "theme_mode"})
	if cmd != nil {
		t.Error("unrelated keys should not reload notes")
	}

	_, cmd = send(m, msg.StoreChangedMsg{Key: notes.StorageKey})
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	changed, ok := cmd().(msg.NotesChangedMsg)
	if !ok || changed.Err != nil {
		t.Fatalf("reload = %+v", changed)
	}
	if ns.Len() == 0 {
		t.Error("sample lists should still be loaded")
	}

	send(m, changed)
	for _, f := range fakes {
		if len(f.received) == 0 {
			t.Errorf("%s did not receive NotesChangedMsg", f.id)
		}
	}
}

func TestReloadErrorToast(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(m, msg.NotesChangedMsg{Err: errors.New("disk gone")})
	if !m.statusIsError || !strings.Contains(m.statusMsg, "disk gone") {
		t.Errorf("status = %q, error %v", m.statusMsg, m.statusIsError)
	}
}

func TestToastExpires(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(m, msg.ToastMsg{Message: "Saved Bars", Duration: time.Minute})
	if !strings.Contains(m.View(), "Saved Bars") {
		t.Error("toast not shown in footer")
	}
	m.statusExpiry = time.Now().Add(-time.Second)
	m, _ = send(m, TickMsg(time.Now()))
	if m.statusMsg != "" {
		t.Error("expired toast should be cleared")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(m, keyRunes("?"))
	if !m.showHelp {
		t.Fatal("expected help")
	}
	view := m.View()
	if !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "ONE") {
		t.Errorf("help missing content:\n%s", view)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showHelp {
		t.Error("esc should close help")
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = send(m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("expected size warning")
	}
}
