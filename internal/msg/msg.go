// Package msg holds tea messages shared between the app and its tabs.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/placenotes/internal/ui"
)

// ToastMsg displays a temporary message.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool // true for error toasts (red), false for success (green)
}

// ShowToast returns a command to show a toast message.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
		}
	}
}

// ShowError returns a command to show an error toast.
func ShowError(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{
			Message:  message,
			Duration: duration,
			IsError:  true,
		}
	}
}

// NotesChangedMsg tells every tab that the notes collection changed.
type NotesChangedMsg struct {
	Err error // set when a reload from storage failed
}

// NotesChanged returns a command broadcasting NotesChangedMsg.
func NotesChanged() tea.Cmd {
	return func() tea.Msg { return NotesChangedMsg{} }
}

// StoreChangedMsg reports a key written by another process.
type StoreChangedMsg struct {
	Key string
}

// ThemeChangedMsg is sent after the theme mode was toggled.
type ThemeChangedMsg struct {
	Dark bool
}

// ConfirmMsg asks the app to show a confirmation dialog and run OnConfirm
// if the user accepts.
type ConfirmMsg struct {
	Dialog    *ui.ConfirmDialog
	OnConfirm tea.Cmd
}

// Confirm returns a command requesting a confirmation dialog.
func Confirm(d *ui.ConfirmDialog, onConfirm tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return ConfirmMsg{Dialog: d, OnConfirm: onConfirm}
	}
}
