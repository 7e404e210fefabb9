package lists

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/placenotes/internal/config"
	"github.com/marcus/placenotes/internal/editor"
	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/ui"
)

const privateMark = "🔒"

// handleListKey handles keys on the list screen.
func (p *Plugin) handleListKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "j", "down":
		if p.cursor < len(p.notes)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "g", "home":
		p.cursor = 0
	case "G", "end":
		p.cursor = max(0, len(p.notes)-1)
	case "enter", "e":
		if n := p.selectedNote(); n != nil {
			return p.openExisting(n.ID)
		}
	case "n":
		return p.openNew()
	case "d", "x":
		return p.confirmDelete()
	case "y":
		return p.yankSelected()
	case "p":
		p.showPreview = !p.showPreview
	case "r":
		return p.reload()
	}
	return nil
}

// reload re-reads the collection from storage.
func (p *Plugin) reload() tea.Cmd {
	store := p.ctx.Notes
	return func() tea.Msg {
		return msg.NotesChangedMsg{Err: store.Reload(context.Background())}
	}
}

func (p *Plugin) confirmDelete() tea.Cmd {
	n := p.selectedNote()
	if n == nil {
		return nil
	}
	id, title := n.ID, n.Title
	store := p.ctx.Notes
	d := ui.NewConfirmDialog(
		"Delete List",
		fmt.Sprintf("Delete %q? This cannot be undone.", title),
	)
	d.ConfirmLabel = " Delete "
	d.Danger = true
	return msg.Confirm(d, func() tea.Msg {
		err := store.Delete(context.Background(), id)
		return NoteDeletedMsg{ID: id, Title: title, Err: err}
	})
}

func (p *Plugin) handleNoteDeleted(m NoteDeletedMsg) tea.Cmd {
	if m.Err != nil {
		p.ctx.Logger.Error("lists: delete failed", "id", m.ID, "error", m.Err)
		return msg.ShowError("Delete failed: "+m.Err.Error(), 3*time.Second)
	}
	p.refresh()
	return tea.Batch(
		msg.ShowToast("Deleted "+m.Title, 2*time.Second),
		msg.NotesChanged(),
	)
}

// yankSelected copies the selected list as plain text.
func (p *Plugin) yankSelected() tea.Cmd {
	n := p.selectedNote()
	if n == nil {
		return nil
	}
	return copyText(plainList(n.Title, n.Content))
}

// plainList renders a list as clipboard text with mentions shown by name.
func plainList(title, content string) string {
	body := mention.PlainText(strings.TrimRight(content, "\n"))
	if body == "" {
		return title
	}
	return title + "\n" + body
}

func copyText(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" {
		return msg.ShowToast("Nothing to copy", 2*time.Second)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return msg.ShowToast("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied to clipboard", 2*time.Second)
}

func (p *Plugin) openNew() tea.Cmd {
	p.ed = editor.New(p.ctx.Notes, p.ctx.Places)
	p.isNew = true
	return p.enterEditor()
}

func (p *Plugin) openExisting(id string) tea.Cmd {
	ed, err := editor.Open(p.ctx.Notes, id, p.ctx.Places)
	if err != nil {
		p.ctx.Logger.Warn("lists: open failed", "id", id, "error", err)
		p.refresh()
		return msg.ShowError("List no longer exists", 3*time.Second)
	}
	p.ed = ed
	p.isNew = false
	return p.enterEditor()
}

// ensureVisible keeps the cursor row on screen.
func (p *Plugin) ensureVisible(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	if p.cursor < p.scrollOff {
		p.scrollOff = p.cursor
	}
	if p.cursor >= p.scrollOff+visibleRows {
		p.scrollOff = p.cursor - visibleRows + 1
	}
	if p.scrollOff < 0 {
		p.scrollOff = 0
	}
}

// renderList renders the list screen, with the preview pane if enabled.
func (p *Plugin) renderList() string {
	header := styles.Title.Render(fmt.Sprintf("My Lists (%d)", len(p.notes)))

	if len(p.notes) == 0 {
		empty := styles.Muted.Render("No lists yet. Press n to create one.")
		return lipgloss.JoinVertical(lipgloss.Left, header, "", empty)
	}

	listWidth := p.width
	if p.showPreview && p.width >= 60 {
		listWidth = p.width * 2 / 5
	}

	bodyHeight := p.height - 2
	p.ensureVisible(bodyHeight / rowHeight)

	var rows []string
	end := min(len(p.notes), p.scrollOff+max(1, bodyHeight/rowHeight))
	for i := p.scrollOff; i < end; i++ {
		rows = append(rows, p.renderRow(p.notes[i], i == p.cursor, listWidth))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if listWidth < p.width {
		n := p.notes[p.cursor]
		previewWidth := p.width - listWidth - 4
		pane := styles.Panel.
			Width(previewWidth).
			Height(max(1, bodyHeight-2)).
			MaxHeight(bodyHeight).
			Render(p.preview.Render(n, previewWidth-2))
		list = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(listWidth).Render(list), pane)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", list)
}

// renderRow renders one list entry: emoji, title, privacy and date on the
// first line and a content preview with place pills below.
func (p *Plugin) renderRow(n notes.Note, selected bool, width int) string {
	cursor := "  "
	titleStyle := styles.ListItemNormal
	if selected {
		cursor = styles.ListCursor.Render("> ")
		titleStyle = styles.ListItemSelected
	}

	date := n.UpdatedAt.Format("Jan 2")
	lock := ""
	if n.IsPrivate {
		lock = " " + privateMark
	}
	avail := width - 2 - runewidth.StringWidth(n.Emoji) - 1 - runewidth.StringWidth(lock) - len(date) - 2
	title := ui.Truncate(n.Title, max(1, avail))
	left := cursor + n.Emoji + " " + titleStyle.Render(title) + lock
	gap := max(1, width-lipgloss.Width(left)-len(date))
	first := left + strings.Repeat(" ", gap) + styles.ListDate.Render(date)

	second := "    " + ui.TruncateStyled(renderPreview(notes.Preview(n.Content)), max(1, width-4))
	return first + "\n" + second + "\n"
}

// renderPreview styles a one-line content preview, drawing mentions as pills.
func renderPreview(preview string) string {
	var b strings.Builder
	for seg := range mention.Decode(preview) {
		if seg.IsMention() {
			b.WriteString(styles.MentionPill.Render(seg.Name))
			continue
		}
		b.WriteString(styles.ListPreview.Render(seg.Text))
	}
	return b.String()
}

func pluginFlag(cfg *config.Config, flag string) bool {
	return cfg == nil || cfg.Enabled(flag)
}
