package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
)

// TickMsg is sent on each clock tick.
type TickMsg time.Time

// tickCmd returns a command that ticks every second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// PluginFocused returns a command that sends PluginFocusedMsg.
func PluginFocused() tea.Cmd {
	return func() tea.Msg {
		return plugin.PluginFocusedMsg{}
	}
}

// reloadNotes re-reads the collection after another process wrote it.
func reloadNotes(store *notes.Store) tea.Cmd {
	return func() tea.Msg {
		return msg.NotesChangedMsg{Err: store.Reload(context.Background())}
	}
}
