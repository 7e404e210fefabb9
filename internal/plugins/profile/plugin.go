// Package profile is the Profile tab: collection stats and the theme toggle.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/styles"
)

const (
	pluginID   = "profile"
	pluginName = "Profile"
	pluginIcon = "☺"
)

// Stats summarizes the saved lists.
type Stats struct {
	Lists    int
	Private  int
	Mentions int
	Places   int // distinct places mentioned
}

// Plugin implements the Profile tab.
type Plugin struct {
	ctx     *plugin.Context
	focused bool
	stats   Stats
}

// New creates the Profile plugin.
func New() *Plugin {
	return &Plugin{}
}

// ID returns the plugin identifier.
func (p *Plugin) ID() string { return pluginID }

// Name returns the plugin display name.
func (p *Plugin) Name() string { return pluginName }

// Icon returns the plugin icon character.
func (p *Plugin) Icon() string { return pluginIcon }

// Init initializes the plugin with context.
func (p *Plugin) Init(ctx *plugin.Context) error {
	if ctx == nil || ctx.Notes == nil || ctx.Prefs == nil {
		return errors.New("profile: notes store or preferences unavailable")
	}
	p.ctx = ctx
	p.refresh()
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

func (p *Plugin) refresh() {
	var s Stats
	places := make(map[string]bool)
	for _, n := range p.ctx.Notes.List() {
		s.Lists++
		if n.IsPrivate {
			s.Private++
		}
		for seg := range mention.Decode(n.Content) {
			if seg.IsMention() {
				s.Mentions++
				places[seg.ID] = true
			}
		}
	}
	s.Places = len(places)
	p.stats = s
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case msg.NotesChangedMsg, plugin.PluginFocusedMsg:
		p.refresh()
	case tea.KeyMsg:
		if m.String() == "t" {
			return p, p.toggleTheme()
		}
	}
	return p, nil
}

// toggleTheme flips dark/light mode, applies it and saves the choice.
func (p *Plugin) toggleTheme() tea.Cmd {
	dark, err := p.ctx.Prefs.ToggleTheme(context.Background())
	styles.ApplyTheme(styles.ForMode(dark))
	changed := func() tea.Msg { return msg.ThemeChangedMsg{Dark: dark} }
	if err != nil {
		p.ctx.Logger.Error("profile: save theme failed", "error", err)
		return tea.Batch(changed, msg.ShowError("Theme not saved: "+err.Error(), 3*time.Second))
	}
	return changed
}

// View renders the tab.
func (p *Plugin) View(width, height int) string {
	mode := "Light"
	if p.ctx.Prefs.DarkMode() {
		mode = "Dark"
	}

	rows := [][2]string{
		{"Lists", fmt.Sprint(p.stats.Lists)},
		{"Private", fmt.Sprint(p.stats.Private)},
		{"Public", fmt.Sprint(p.stats.Lists - p.stats.Private)},
		{"Mentions", fmt.Sprint(p.stats.Mentions)},
		{"Places", fmt.Sprint(p.stats.Places)},
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Profile"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%-10s", r[0])))
		b.WriteString(styles.Body.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("%-10s", "Theme")))
	b.WriteString(styles.Body.Render(mode))
	b.WriteString(styles.Muted.Render("  (t to toggle)"))
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(b.String())
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string { return "profile" }

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	return []plugin.Command{
		{ID: "toggle-theme", Key: "t", Name: "Theme", Description: "Switch between dark and light mode", Category: plugin.CategoryView, Context: "profile", Priority: 1},
	}
}
