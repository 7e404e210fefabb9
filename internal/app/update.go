package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/placenotes/internal/keymap"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/ui"
)

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		return m, nil

	case TickMsg:
		m.ClearToast()
		return m, tickCmd()

	case msg.ToastMsg:
		m.ShowToast(message.Message, message.Duration, message.IsError)
		return m, nil

	case msg.ConfirmMsg:
		m.confirm = message.Dialog
		m.onConfirm = message.OnConfirm
		return m, nil

	case msg.StoreChangedMsg:
		if message.Key == notes.StorageKey && m.notes != nil {
			return m, reloadNotes(m.notes)
		}
		return m, nil

	case msg.NotesChangedMsg:
		if message.Err != nil {
			m.logger.Error("app: notes reload failed", "error", message.Err)
			m.ShowToast("Could not reload lists: "+message.Err.Error(), 5*time.Second, true)
		}
	}

	// Forward other messages to all plugins so results reach their owner
	// even when another tab is focused.
	cmds := m.broadcast(message)
	m.updateContext()
	return m, tea.Batch(cmds...)
}

func (m Model) broadcast(message tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range m.registry.Plugins() {
		if _, cmd := p.Update(message); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		switch m.confirm.HandleKey(k) {
		case ui.ConfirmAccept:
			cmd := m.onConfirm
			m.confirm, m.onConfirm = nil, nil
			return m, cmd
		case ui.ConfirmCancel:
			m.confirm, m.onConfirm = nil, nil
		}
		return m, nil
	}

	if k.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		if k.Type == tea.KeyEsc || k.String() == "?" || k.String() == "q" {
			m.showHelp = false
		}
		return m, nil
	}

	// Text input contexts: forward everything except ctrl+c.
	if m.consumesTextInput() {
		return m, m.forwardToActive(k)
	}

	if command, ok := m.keymap.Lookup(k.String(), m.activeContext); ok {
		if model, cmd, handled := m.runCommand(command); handled {
			return model, cmd
		}
	}

	return m, m.forwardToActive(k)
}

// runCommand executes an app-level command.
func (m Model) runCommand(command string) (tea.Model, tea.Cmd, bool) {
	if idx, ok := keymap.TabIndex(command); ok {
		return m, m.SetActivePlugin(idx), true
	}
	switch command {
	case keymap.CmdQuit:
		model, cmd := m.quit()
		return model, cmd, true
	case keymap.CmdNextTab:
		return m, m.NextPlugin(), true
	case keymap.CmdPrevTab:
		return m, m.PrevPlugin(), true
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil, true
	case keymap.CmdToggleFooter:
		m.showFooter = !m.showFooter
		return m, nil, true
	}
	return m, nil, false
}

func (m *Model) forwardToActive(k tea.KeyMsg) tea.Cmd {
	p := m.ActivePlugin()
	if p == nil {
		return nil
	}
	_, cmd := p.Update(k)
	m.updateContext()
	return cmd
}

func (m Model) consumesTextInput() bool {
	if c, ok := m.ActivePlugin().(plugin.TextInputConsumer); ok {
		return c.ConsumesTextInput()
	}
	return false
}

// quit saves open work and exits. Flush commands run to completion before
// the program quits.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.quitting = true
	var seq []tea.Cmd
	for _, p := range m.registry.Plugins() {
		if f, ok := p.(plugin.Flusher); ok {
			if cmd := f.Flush(); cmd != nil {
				seq = append(seq, cmd)
			}
		}
	}
	reg := m.registry
	seq = append(seq, func() tea.Msg {
		reg.Stop()
		return nil
	}, tea.Quit)
	return m, tea.Sequence(seq...)
}

// updateContext sets activeContext based on current state.
func (m *Model) updateContext() {
	if p := m.ActivePlugin(); p != nil {
		m.activeContext = p.FocusContext()
	} else {
		m.activeContext = "global"
	}
}
