package plugin

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type stubPlugin struct {
	id      string
	initErr error
	panics  bool
	started bool
	stopped bool
}

func (s *stubPlugin) ID() string   { return s.id }
func (s *stubPlugin) Name() string { return s.id }
func (s *stubPlugin) Icon() string { return "" }
func (s *stubPlugin) Init(*Context) error {
	if s.panics {
		panic("boom")
	}
	return s.initErr
}
func (s *stubPlugin) Start() tea.Cmd {
	s.started = true
	return func() tea.Msg { return nil }
}
func (s *stubPlugin) Stop()                            { s.stopped = true }
func (s *stubPlugin) Update(tea.Msg) (Plugin, tea.Cmd) { return s, nil }
func (s *stubPlugin) View(int, int) string             { return "" }
func (s *stubPlugin) IsFocused() bool                  { return false }
func (s *stubPlugin) SetFocused(bool)                  {}
func (s *stubPlugin) Commands() []Command              { return nil }
func (s *stubPlugin) FocusContext() string             { return s.id }

func TestRegistry(t *testing.T) {
	r := NewRegistry(&Context{})
	ok := &stubPlugin{id: "lists"}
	failing := &stubPlugin{id: "broken", initErr: errors.New("no store")}
	panicking := &stubPlugin{id: "panics", panics: true}

	if err := r.Register(ok); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(failing); err == nil {
		t.Error("expected init error")
	}
	if err := r.Register(panicking); err == nil {
		t.Error("expected panic to surface as error")
	}

	if got := len(r.Plugins()); got != 1 {
		t.Fatalf("Plugins() = %d, want 1", got)
	}
	un := r.Unavailable()
	if un["broken"] != "no store" {
		t.Errorf("Unavailable[broken] = %q", un["broken"])
	}
	if _, ok := un["panics"]; !ok {
		t.Error("panicking plugin not recorded")
	}

	if cmds := r.Start(); len(cmds) != 1 || !ok.started {
		t.Errorf("Start() = %d cmds, started=%v", len(cmds), ok.started)
	}
	r.Stop()
	if !ok.stopped {
		t.Error("Stop not forwarded")
	}
}
