// Package activity is the Activity tab: recently edited lists and the
// prototype reset.
package activity

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/ui"
)

const (
	pluginID   = "activity"
	pluginName = "Activity"
	pluginIcon = "◷"

	recentLimit = 10
)

// ResetDoneMsg is returned after the notes were reset to the sample lists.
type ResetDoneMsg struct {
	Err error
}

// Plugin implements the Activity tab.
type Plugin struct {
	ctx     *plugin.Context
	focused bool
	recent  []notes.Note
	now     func() time.Time
}

// New creates the Activity plugin.
func New() *Plugin {
	return &Plugin{now: time.Now}
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
		return errors.New("activity: notes store unavailable")
	}
	p.ctx = ctx
	p.refresh()
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// refresh collects the most recently updated lists.
func (p *Plugin) refresh() {
	list := p.ctx.Notes.List()
	slices.SortStableFunc(list, func(a, b notes.Note) int {
		return cmp.Compare(b.UpdatedAt.UnixNano(), a.UpdatedAt.UnixNano())
	})
	if len(list) > recentLimit {
		list = list[:recentLimit]
	}
	p.recent = list
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case msg.NotesChangedMsg, plugin.PluginFocusedMsg:
		p.refresh()
	case ResetDoneMsg:
		if m.Err != nil {
			p.ctx.Logger.Error("activity: reset failed", "error", m.Err)
			return p, msg.ShowError("Reset failed: "+m.Err.Error(), 3*time.Second)
		}
		p.refresh()
		return p, tea.Batch(msg.ShowToast("Prototype reset", 2*time.Second), msg.NotesChanged())
	case tea.KeyMsg:
		if m.String() == "R" {
			return p, p.confirmReset()
		}
	}
	return p, nil
}

// confirmReset asks before wiping every saved list.
func (p *Plugin) confirmReset() tea.Cmd {
	store := p.ctx.Notes
	d := ui.NewConfirmDialog(
		"Reset Prototype",
		fmt.Sprintf("This will delete all %d saved notes and reset the app to its initial state. This cannot be undone.", store.Len()),
	)
	d.ConfirmLabel = " Reset "
	d.Danger = true
	return msg.Confirm(d, func() tea.Msg {
		return ResetDoneMsg{Err: store.ClearAll(context.Background())}
	})
}

// View renders the tab.
func (p *Plugin) View(width, height int) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Activity"))
	b.WriteString("\n")

	if len(p.recent) == 0 {
		b.WriteString(styles.Subtitle.Render("Recent activity will appear here"))
		b.WriteString("\n")
	} else {
		b.WriteString(styles.Subtitle.Render("Recently edited"))
		b.WriteString("\n\n")
		for _, n := range p.recent {
			when := styles.ListDate.Render(relativeTime(p.now(), n.UpdatedAt))
			title := ui.Truncate(n.Title, max(1, width-lipgloss.Width(when)-6))
			left := n.Emoji + " " + styles.ListItemNormal.Render(title)
			gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(when))
			b.WriteString(left + strings.Repeat(" ", gap) + when + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Danger.Render("R") + styles.Muted.Render(" Reset prototype"))
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(b.String())
}

// relativeTime formats t relative to now, e.g. "5m ago".
func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("Jan 2")
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string { return "activity" }

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	return []plugin.Command{
		{ID: "reset", Key: "R", Name: "Reset", Description: "Delete all lists and restore the samples", Category: plugin.CategorySystem, Context: "activity", Priority: 1},
	}
}
