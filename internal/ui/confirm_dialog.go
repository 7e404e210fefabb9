package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/styles"
)

// Modal widths.
const (
	ModalWidthSmall  = 40
	ModalWidthMedium = 50
)

// ConfirmAction is the outcome of a key press in a ConfirmDialog.
type ConfirmAction int

const (
	ConfirmNone ConfirmAction = iota
	ConfirmAccept
	ConfirmCancel
)

// ConfirmDialog is a reusable confirmation modal with two buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g., " Delete ", " Reset "
	CancelLabel  string
	Danger       bool // red border and confirm button
	Width        int

	focusConfirm bool
}

// NewConfirmDialog creates a dialog with sensible defaults. Cancel starts
// focused.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
	}
}

// ConfirmFocused reports whether the confirm button has focus.
func (d *ConfirmDialog) ConfirmFocused() bool { return d.focusConfirm }

// HandleKey applies a key press. y and n act directly, tab and arrows move
// focus, enter picks the focused button, esc cancels.
func (d *ConfirmDialog) HandleKey(msg tea.KeyMsg) ConfirmAction {
	switch msg.String() {
	case "y", "Y":
		return ConfirmAccept
	case "n", "N", "esc", "q":
		return ConfirmCancel
	case "tab", "shift+tab", "left", "right", "h", "l":
		d.focusConfirm = !d.focusConfirm
	case "enter":
		if d.focusConfirm {
			return ConfirmAccept
		}
		return ConfirmCancel
	}
	return ConfirmNone
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	box := styles.ModalBox
	confirm, confirmFocused := styles.Button, styles.ButtonFocused
	if d.Danger {
		box = styles.ModalDanger
		confirm, confirmFocused = styles.ButtonDanger, styles.ButtonDangerFocused
	}
	cancel := styles.Button
	if d.focusConfirm {
		confirm = confirmFocused
	} else {
		cancel = styles.ButtonFocused
	}

	inner := d.Width - box.GetHorizontalFrameSize()
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render(d.Title))
	b.WriteString("\n")
	b.WriteString(styles.Body.Width(inner).Render(d.Message))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		confirm.Render(d.ConfirmLabel), "  ", cancel.Render(d.CancelLabel)))
	return box.Width(d.Width).Render(b.String())
}
