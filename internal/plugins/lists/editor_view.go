package lists

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/config"
	"github.com/marcus/placenotes/internal/editor"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/typeahead"
	"github.com/marcus/placenotes/internal/ui"
)

// enterEditor switches to the editor screen and loads the inputs from p.ed.
func (p *Plugin) enterEditor() tea.Cmd {
	p.screen = screenEditor
	p.inflight = nil
	p.suggestionIdx = 0
	p.templateIdx = 0
	p.syncInputs()
	if p.isNew {
		return p.setFocus(focusTitle)
	}
	return p.setFocus(focusContent)
}

// syncInputs copies the editor's title and content into the inputs.
func (p *Plugin) syncInputs() {
	p.titleInput.SetValue(p.ed.Title())
	p.titleInput.CursorEnd()
	setValueAt(&p.contentArea, p.ed.Content(), p.ed.Cursor())
}

// closeEditor returns to the list screen.
func (p *Plugin) closeEditor() {
	p.titleInput.Blur()
	p.contentArea.Blur()
	p.ed = nil
	p.inflight = nil
	p.screen = screenList
	p.refresh()
}

// focusOrder lists the editor areas tab cycles through.
func (p *Plugin) focusOrder() []focusArea {
	order := []focusArea{focusTitle}
	if pluginFlag(p.ctx.Config, config.FlagEmojiPicker) {
		order = append(order, focusEmoji)
	}
	if p.ed.ShowTemplates() {
		order = append(order, focusTemplates)
	}
	return append(order, focusContent)
}

func (p *Plugin) setFocus(f focusArea) tea.Cmd {
	p.focus = f
	p.titleInput.Blur()
	p.contentArea.Blur()
	switch f {
	case focusTitle:
		return p.titleInput.Focus()
	case focusContent:
		return p.contentArea.Focus()
	}
	return nil
}

func (p *Plugin) cycleFocus(delta int) tea.Cmd {
	order := p.focusOrder()
	idx := 0
	for i, f := range order {
		if f == p.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return p.setFocus(order[idx])
}

// handleEditorKey handles keys on the editor screen.
func (p *Plugin) handleEditorKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "esc":
		if p.ed.Composing() {
			p.ed.CloseSuggestions()
			return nil
		}
		return p.leave()
	case "ctrl+p":
		return p.togglePrivacy()
	case "ctrl+d":
		return p.deleteFromEditor()
	case "ctrl+z":
		if !p.ed.CanUndoTemplate() {
			return nil
		}
		p.ed.UndoTemplate()
		p.syncInputs()
		return p.setFocus(focusTitle)
	case "ctrl+y":
		return copyText(plainList(p.ed.Fields().Title, p.ed.Content()))
	case "tab":
		if p.focus == focusContent && p.ed.Composing() {
			return p.pickSuggestion()
		}
		return p.cycleFocus(1)
	case "shift+tab":
		return p.cycleFocus(-1)
	}

	switch p.focus {
	case focusTitle:
		return p.updateTitle(m)
	case focusEmoji:
		p.handleEmojiKey(m)
		return nil
	case focusTemplates:
		return p.handleTemplateKey(m)
	}

	if p.ed.Composing() {
		switch m.String() {
		case "up":
			if p.suggestionIdx > 0 {
				p.suggestionIdx--
			}
			return nil
		case "down":
			if p.suggestionIdx < len(p.visibleSuggestions())-1 {
				p.suggestionIdx++
			}
			return nil
		case "enter":
			if len(p.visibleSuggestions()) > 0 {
				return p.pickSuggestion()
			}
		}
	}
	return p.updateContent(m)
}

func (p *Plugin) updateTitle(m tea.KeyMsg) tea.Cmd {
	if m.String() == "enter" {
		return p.setFocus(focusContent)
	}
	before := p.titleInput.Value()
	var cmd tea.Cmd
	p.titleInput, cmd = p.titleInput.Update(m)
	if v := p.titleInput.Value(); v != before {
		p.ed.SetTitle(v)
	}
	return cmd
}

// updateContent forwards a key to the textarea and runs the resulting edit
// through the editor, which may rewrite bullets.
func (p *Plugin) updateContent(m tea.KeyMsg) tea.Cmd {
	before := p.contentArea.Value()
	var cmd tea.Cmd
	p.contentArea, cmd = p.contentArea.Update(m)
	raw := p.contentArea.Value()
	off := cursorOffset(p.contentArea)
	if raw != before {
		p.ed.SetCursor(off)
		formatted := p.ed.SetContent(raw)
		off += runeLen(formatted) - runeLen(raw)
		if formatted != raw {
			setValueAt(&p.contentArea, formatted, off)
		}
		p.suggestionIdx = 0
	}
	p.ed.SetCursor(off)
	return cmd
}

func (p *Plugin) visibleSuggestions() []typeahead.Suggestion {
	all := p.ed.Suggestions()
	if len(all) > maxSuggestions {
		all = all[:maxSuggestions]
	}
	return all
}

// pickSuggestion inserts the highlighted place as a mention.
func (p *Plugin) pickSuggestion() tea.Cmd {
	list := p.visibleSuggestions()
	if len(list) == 0 {
		return nil
	}
	s := list[min(p.suggestionIdx, len(list)-1)]
	if err := p.ed.SelectSuggestion(s); err != nil {
		p.ctx.Logger.Warn("lists: mention insert failed", "place", s.ID, "error", err)
		return msg.ShowError("Could not add "+s.Name, 2*time.Second)
	}
	p.suggestionIdx = 0
	setValueAt(&p.contentArea, p.ed.Content(), p.ed.Cursor())
	if p.isNew {
		return nil
	}
	return msg.ShowToast("Added "+s.Name, 2*time.Second)
}

func (p *Plugin) handleEmojiKey(m tea.KeyMsg) {
	list := p.ed.Emojis()
	if len(list) == 0 {
		return
	}
	idx := 0
	for i, e := range list {
		if e == p.ed.Emoji() {
			idx = i
			break
		}
	}
	switch m.String() {
	case "left", "h":
		idx = (idx - 1 + len(list)) % len(list)
	case "right", "l", " ":
		idx = (idx + 1) % len(list)
	default:
		return
	}
	p.ed.SelectEmoji(list[idx])
}

func (p *Plugin) handleTemplateKey(m tea.KeyMsg) tea.Cmd {
	templates := editor.Templates()
	switch m.String() {
	case "left", "h":
		p.templateIdx = (p.templateIdx - 1 + len(templates)) % len(templates)
	case "right", "l":
		p.templateIdx = (p.templateIdx + 1) % len(templates)
	case "enter", " ":
		if p.ed.ApplyTemplate(templates[p.templateIdx]) {
			p.syncInputs()
			return p.setFocus(focusContent)
		}
	}
	return nil
}

func (p *Plugin) togglePrivacy() tea.Cmd {
	if err := p.ed.TogglePrivacy(context.Background()); err != nil {
		p.ctx.Logger.Error("lists: privacy toggle failed", "id", p.ed.ID(), "error", err)
		return msg.ShowError("Could not change privacy", 3*time.Second)
	}
	label := "Public"
	if p.ed.IsPrivate() {
		label = "Private"
	}
	toast := msg.ShowToast("List is now "+strings.ToLower(label), 2*time.Second)
	if p.isNew {
		return toast
	}
	return tea.Batch(toast, msg.NotesChanged())
}

func (p *Plugin) deleteFromEditor() tea.Cmd {
	if p.isNew {
		return p.startDelete()
	}
	title := p.ed.Fields().Title
	d := ui.NewConfirmDialog("Delete List", fmt.Sprintf("Delete %q? This cannot be undone.", title))
	d.ConfirmLabel = " Delete "
	d.Danger = true
	return msg.Confirm(d, func() tea.Msg { return editorDeleteConfirmedMsg{} })
}

// startDelete deletes the open list in the background.
func (p *Plugin) startDelete() tea.Cmd {
	if p.ed == nil || p.busy() {
		return nil
	}
	snap := p.ed.Snapshot()
	return p.track(func() tea.Msg {
		return EditorDeletedMsg{Title: snap.Fields().Title, Err: snap.Delete(context.Background())}
	})
}

func (p *Plugin) handleEditorDeleted(m EditorDeletedMsg) tea.Cmd {
	if m.Err != nil {
		p.ctx.Logger.Error("lists: delete failed", "error", m.Err)
		return msg.ShowError("Delete failed: "+m.Err.Error(), 3*time.Second)
	}
	wasNew := p.isNew
	p.closeEditor()
	if wasNew {
		return msg.ShowToast("Draft discarded", 2*time.Second)
	}
	return tea.Batch(
		msg.ShowToast("Deleted "+m.Title, 2*time.Second),
		msg.NotesChanged(),
	)
}

// leave saves the draft in the background and returns to the list when the
// save finishes. Input is ignored until then. The save works on a snapshot
// so rendering can keep reading the editor.
func (p *Plugin) leave() tea.Cmd {
	if p.busy() {
		return nil
	}
	snap := p.ed.Snapshot()
	return p.track(func() tea.Msg {
		res, _, err := snap.Save(context.Background())
		return EditorSavedMsg{Result: res, Title: snap.Fields().Title, Err: err}
	})
}

// track marks run as the operation in flight until it returns.
func (p *Plugin) track(run func() tea.Msg) tea.Cmd {
	done := make(chan struct{})
	p.inflight = done
	return func() tea.Msg {
		defer close(done)
		return run()
	}
}

func (p *Plugin) busy() bool { return p.inflight != nil }

func (p *Plugin) handleSaved(m EditorSavedMsg) tea.Cmd {
	if p.screen == screenEditor {
		p.closeEditor()
	}
	if m.Err != nil {
		p.ctx.Logger.Error("lists: save failed", "title", m.Title, "error", m.Err)
		if errors.Is(m.Err, editor.ErrClosed) {
			return nil
		}
		return msg.ShowError("Save failed: "+m.Err.Error(), 3*time.Second)
	}
	switch m.Result {
	case editor.ResultCreated:
		return tea.Batch(msg.ShowToast("Created "+m.Title, 2*time.Second), msg.NotesChanged())
	case editor.ResultUpdated:
		return tea.Batch(msg.ShowToast("Saved "+m.Title, 2*time.Second), msg.NotesChanged())
	}
	return nil
}

// renderEditor renders the editor screen.
func (p *Plugin) renderEditor() string {
	w := max(20, p.width)

	heading := "Edit list"
	if p.isNew {
		heading = "New list"
	}
	privacy := styles.PublicPill.Render("Public")
	if p.ed.IsPrivate() {
		privacy = styles.PrivatePill.Render(privateMark + " Private")
	}
	header := styles.Title.Render(heading) + "  " + privacy

	var sections []string
	sections = append(sections, header, "")
	sections = append(sections, p.fieldLabel("Title", focusTitle)+" "+p.titleInput.View())

	if pluginFlag(p.ctx.Config, config.FlagEmojiPicker) {
		sections = append(sections, p.fieldLabel("Icon", focusEmoji)+" "+p.renderEmojiRow(w-8))
	}
	if p.ed.ShowTemplates() {
		sections = append(sections, "", p.renderTemplates(w))
	}
	sections = append(sections, "")

	top := lipgloss.JoinVertical(lipgloss.Left, sections...)
	hint := styles.Muted.Render("esc save & back · tab next field · ctrl+p privacy · ctrl+d delete")

	taHeight := max(3, p.height-lipgloss.Height(top)-2)
	p.contentArea.SetWidth(max(10, w-2))
	p.contentArea.SetHeight(taHeight)
	content := p.contentArea.View()

	if p.ed.Composing() && p.focus == focusContent {
		if pop := p.renderSuggestions(); pop != "" {
			y := max(0, taHeight-lipgloss.Height(pop))
			content = ui.OverlayAt(content, pop, 2, y, taHeight)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, content, "", hint)
}

func (p *Plugin) fieldLabel(label string, area focusArea) string {
	if p.focus == area {
		return styles.ListCursor.Render(fmt.Sprintf("%-6s", label))
	}
	return styles.Muted.Render(fmt.Sprintf("%-6s", label))
}

func (p *Plugin) renderEmojiRow(width int) string {
	var cells []string
	used := 0
	for _, e := range p.ed.Emojis() {
		st := styles.EmojiNormal
		if e == p.ed.Emoji() {
			st = styles.EmojiSelected
		}
		cell := st.Render(e)
		if used+lipgloss.Width(cell) > width {
			break
		}
		used += lipgloss.Width(cell)
		cells = append(cells, cell)
	}
	return strings.Join(cells, "")
}

func (p *Plugin) renderTemplates(width int) string {
	label := styles.Subtitle.Render("Start from a template")
	if p.focus == focusTemplates {
		label = styles.ListCursor.Render("Start from a template")
	}
	var pills []string
	used := 0
	for i, t := range editor.Templates() {
		st := styles.TemplatePill
		if p.focus == focusTemplates && i == p.templateIdx {
			st = styles.PopoverSel
		}
		pill := st.Render(t.Icon + " " + t.Title)
		if used+lipgloss.Width(pill)+1 > width {
			break
		}
		used += lipgloss.Width(pill) + 1
		pills = append(pills, pill)
	}
	return label + "\n" + strings.Join(pills, " ")
}

func (p *Plugin) renderSuggestions() string {
	list := p.visibleSuggestions()
	if len(list) == 0 {
		return styles.Popover.Render(styles.Muted.Render("No places match"))
	}
	var rows []string
	for i, s := range list {
		line := "@" + s.Name
		if s.Address != "" {
			line += "  " + styles.Muted.Render(ui.Truncate(s.Address, 24))
		}
		if i == p.suggestionIdx {
			rows = append(rows, styles.PopoverSel.Render(line))
			continue
		}
		rows = append(rows, styles.PopoverItem.Render(line))
	}
	return styles.Popover.Render(strings.Join(rows, "\n"))
}
