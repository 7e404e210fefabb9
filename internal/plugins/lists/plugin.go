// Package lists is the My Lists tab: the saved lists and the list editor.
package lists

import (
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/config"
	"github.com/marcus/placenotes/internal/editor"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/styles"
)

const (
	pluginID   = "lists"
	pluginName = "My Lists"
	pluginIcon = "☰"

	rowHeight      = 3
	maxSuggestions = 5
)

type screen int

const (
	screenList screen = iota
	screenEditor
)

// focusArea is the part of the editor receiving keys.
type focusArea int

const (
	focusTitle focusArea = iota
	focusContent
	focusEmoji
	focusTemplates
)

// Plugin implements the My Lists tab.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	width  int
	height int

	// List state
	notes       []notes.Note
	cursor      int
	scrollOff   int
	showPreview bool
	preview     *previewRenderer

	// Editor state
	screen        screen
	ed            *editor.Editor
	isNew         bool
	inflight      chan struct{} // closed when the running save or delete returns
	titleInput    textinput.Model
	contentArea   textarea.Model
	focus         focusArea
	suggestionIdx int
	templateIdx   int
}

// New creates the My Lists plugin.
func New() *Plugin {
	return &Plugin{preview: newPreviewRenderer()}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Init initializes the plugin with context.
func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil || ctx.Notes == nil {
		return errors.New("lists: notes store unavailable")
	}
	p.ctx = ctx
	p.notes = ctx.Notes.List()
	p.cursor = 0
	p.scrollOff = 0
	p.screen = screenList
	p.ed = nil
	p.inflight = nil

	hints := pluginFlag(ctx.Config, config.FlagHintText)

	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120
	if hints {
		ti.Placeholder = "Name your list"
	}
	p.titleInput = ti

	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0
	ta.MaxHeight = 0
	if hints {
		ta.Placeholder = "Type - to start a list, @ to mention a place"
	}
	ta.FocusedStyle = textarea.Style{
		Base:        lipgloss.NewStyle(),
		CursorLine:  lipgloss.NewStyle(),
		Placeholder: styles.Muted,
		Text:        styles.Body,
		EndOfBuffer: styles.Muted,
	}
	ta.BlurredStyle = ta.FocusedStyle
	ta.Blur()
	p.contentArea = ta
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case msg.NotesChangedMsg, plugin.PluginFocusedMsg:
		p.refresh()

	case msg.ThemeChangedMsg:
		p.preview.reset()

	case EditorSavedMsg:
		p.inflight = nil
		return p, p.handleSaved(m)

	case editorDeleteConfirmedMsg:
		return p, p.startDelete()

	case EditorDeletedMsg:
		p.inflight = nil
		return p, p.handleEditorDeleted(m)

	case NoteDeletedMsg:
		return p, p.handleNoteDeleted(m)

	case tea.KeyMsg:
		if p.busy() {
			return p, nil
		}
		if p.screen == screenEditor && p.ed != nil {
			return p, p.handleEditorKey(m)
		}
		return p, p.handleListKey(m)
	}
	return p, nil
}

// refresh reloads the list from the store and keeps the cursor in range.
func (p *Plugin) refresh() {
	selected := ""
	if n := p.selectedNote(); n != nil {
		selected = n.ID
	}
	p.notes = p.ctx.Notes.List()
	p.cursor = 0
	for i, n := range p.notes {
		if n.ID == selected {
			p.cursor = i
			break
		}
	}
	p.clampCursor()
}

func (p *Plugin) clampCursor() {
	if p.cursor >= len(p.notes) {
		p.cursor = len(p.notes) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *Plugin) selectedNote() *notes.Note {
	if p.cursor < 0 || p.cursor >= len(p.notes) {
		return nil
	}
	return &p.notes[p.cursor]
}

// View renders the tab.
func (p *Plugin) View(width, height int) string {
	p.width = width
	p.height = height

	var content string
	if p.screen == screenEditor && p.ed != nil {
		content = p.renderEditor()
	} else {
		content = p.renderList()
	}
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// ConsumesTextInput reports whether the editor is open and wants printable
// keys.
func (p *Plugin) ConsumesTextInput() bool {
	return p.screen == screenEditor
}

// Flush saves an open editor before the app quits. If a save or delete is
// already running, the returned command waits for it instead.
func (p *Plugin) Flush() tea.Cmd {
	if done := p.inflight; done != nil {
		return func() tea.Msg {
			<-done
			return nil
		}
	}
	if p.screen != screenEditor || p.ed == nil {
		return nil
	}
	return p.leave()
}

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string {
	if p.screen != screenEditor {
		return "lists-list"
	}
	if p.ed != nil && p.ed.Composing() {
		return "lists-mention"
	}
	return "lists-editor"
}

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	switch p.FocusContext() {
	case "lists-mention":
		return []plugin.Command{
			{ID: "pick-place", Key: "enter", Name: "Insert", Description: "Insert the highlighted place", Category: plugin.CategoryEdit, Context: "lists-mention", Priority: 1},
			{ID: "next-place", Key: "↑/↓", Name: "Choose", Description: "Move through matching places", Category: plugin.CategoryNavigation, Context: "lists-mention", Priority: 2},
			{ID: "close-mention", Key: "esc", Name: "Close", Description: "Stop mentioning a place", Category: plugin.CategoryEdit, Context: "lists-mention", Priority: 3},
		}
	case "lists-editor":
		cmds := []plugin.Command{
			{ID: "back", Key: "esc", Name: "Save & back", Description: "Save the list and return", Category: plugin.CategoryNavigation, Context: "lists-editor", Priority: 1},
			{ID: "next-field", Key: "tab", Name: "Next field", Description: "Move to the next field", Category: plugin.CategoryNavigation, Context: "lists-editor", Priority: 2},
			{ID: "privacy", Key: "ctrl+p", Name: "Privacy", Description: "Toggle private/public", Category: plugin.CategoryEdit, Context: "lists-editor", Priority: 3},
			{ID: "delete", Key: "ctrl+d", Name: "Delete", Description: "Delete this list", Category: plugin.CategoryActions, Context: "lists-editor", Priority: 4},
			{ID: "copy", Key: "ctrl+y", Name: "Copy", Description: "Copy the list as text", Category: plugin.CategoryActions, Context: "lists-editor", Priority: 6},
		}
		if p.ed != nil && p.ed.CanUndoTemplate() {
			cmds = append(cmds, plugin.Command{ID: "undo-template", Key: "ctrl+z", Name: "Undo template", Description: "Clear the applied template", Category: plugin.CategoryEdit, Context: "lists-editor", Priority: 5})
		}
		return cmds
	}
	return []plugin.Command{
		{ID: "open", Key: "enter", Name: "Open", Description: "Edit the selected list", Category: plugin.CategoryActions, Context: "lists-list", Priority: 1},
		{ID: "new", Key: "n", Name: "New", Description: "Create a list", Category: plugin.CategoryActions, Context: "lists-list", Priority: 2},
		{ID: "delete", Key: "d", Name: "Delete", Description: "Delete the selected list", Category: plugin.CategoryActions, Context: "lists-list", Priority: 3},
		{ID: "preview", Key: "p", Name: "Preview", Description: "Toggle the preview pane", Category: plugin.CategoryView, Context: "lists-list", Priority: 4},
		{ID: "yank", Key: "y", Name: "Yank", Description: "Copy the list as text", Category: plugin.CategoryActions, Context: "lists-list", Priority: 5},
		{ID: "refresh", Key: "r", Name: "Refresh", Description: "Reload lists from storage", Category: plugin.CategoryActions, Context: "lists-list", Priority: 6},
	}
}
