// Package explore is the Explore tab: a searchable directory of the places
// that can be mentioned in lists.
package explore

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/mention"
	"github.com/marcus/placenotes/internal/msg"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/typeahead"
	"github.com/marcus/placenotes/internal/ui"
)

const (
	pluginID   = "explore"
	pluginName = "Explore"
	pluginIcon = "◎"
)

// Plugin implements the Explore tab.
type Plugin struct {
	ctx     *plugin.Context
	focused bool

	filter    textinput.Model
	filtering bool

	results   []typeahead.Suggestion
	usage     map[string]int
	cursor    int
	scrollOff int
	height    int
}

// New creates the Explore plugin.
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
	p.ctx = ctx
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Filter places"
	ti.CharLimit = 60
	p.filter = ti
	p.filtering = false
	p.cursor = 0
	p.scrollOff = 0
	p.apply()
	p.countUsage()
	return nil
}

// Start begins plugin operation.
func (p *Plugin) Start() tea.Cmd { return nil }

// Stop cleans up plugin resources.
func (p *Plugin) Stop() {}

// apply re-runs the filter over the known places.
func (p *Plugin) apply() {
	p.results = typeahead.Match(p.ctx.Places, strings.TrimSpace(p.filter.Value()))
	if p.cursor >= len(p.results) {
		p.cursor = max(0, len(p.results)-1)
	}
}

// countUsage counts how many lists mention each place.
func (p *Plugin) countUsage() {
	p.usage = make(map[string]int)
	if p.ctx.Notes == nil {
		return
	}
	for _, n := range p.ctx.Notes.List() {
		seen := make(map[string]bool)
		for _, m := range mention.Mentions(n.Content) {
			if !seen[m.ID] {
				seen[m.ID] = true
				p.usage[m.ID]++
			}
		}
	}
}

// Update handles messages.
func (p *Plugin) Update(m tea.Msg) (plugin.Plugin, tea.Cmd) {
	switch m := m.(type) {
	case msg.NotesChangedMsg, plugin.PluginFocusedMsg:
		p.countUsage()
	case tea.KeyMsg:
		if p.filtering {
			return p, p.handleFilterKey(m)
		}
		return p, p.handleKey(m)
	}
	return p, nil
}

func (p *Plugin) handleFilterKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "esc":
		p.filter.SetValue("")
		p.filter.Blur()
		p.filtering = false
		p.apply()
		return nil
	case "enter":
		p.filter.Blur()
		p.filtering = false
		return nil
	}
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(m)
	p.cursor = 0
	p.scrollOff = 0
	p.apply()
	return cmd
}

func (p *Plugin) handleKey(m tea.KeyMsg) tea.Cmd {
	switch m.String() {
	case "/":
		p.filtering = true
		return p.filter.Focus()
	case "esc":
		if p.filter.Value() != "" {
			p.filter.SetValue("")
			p.apply()
		}
	case "j", "down":
		if p.cursor < len(p.results)-1 {
			p.cursor++
		}
	case "k", "up":
		if p.cursor > 0 {
			p.cursor--
		}
	case "g":
		p.cursor = 0
	case "G":
		p.cursor = max(0, len(p.results)-1)
	case "enter", "y":
		return p.copyMention()
	}
	return nil
}

// copyMention copies the selected place's mention token so it can be pasted
// into a list.
func (p *Plugin) copyMention() tea.Cmd {
	if p.cursor >= len(p.results) {
		return nil
	}
	s := p.results[p.cursor]
	token, err := mention.Encode(s.Name, s.ID)
	if err != nil {
		return msg.ShowError("Cannot mention "+s.Name, 2*time.Second)
	}
	if err := clipboard.WriteAll(token); err != nil {
		return msg.ShowToast("Copy failed: "+err.Error(), 2*time.Second)
	}
	return msg.ShowToast("Copied mention for "+s.Name, 2*time.Second)
}

// View renders the tab.
func (p *Plugin) View(width, height int) string {
	p.height = height

	header := styles.Title.Render("Explore Seattle")
	filterLine := styles.Muted.Render("/ to filter")
	if p.filtering || p.filter.Value() != "" {
		filterLine = p.filter.View()
	}

	var rows []string
	visible := max(1, (height-4)/2)
	if p.cursor < p.scrollOff {
		p.scrollOff = p.cursor
	}
	if p.cursor >= p.scrollOff+visible {
		p.scrollOff = p.cursor - visible + 1
	}
	end := min(len(p.results), p.scrollOff+visible)
	for i := p.scrollOff; i < end; i++ {
		rows = append(rows, p.renderRow(p.results[i], i == p.cursor, width))
	}
	if len(p.results) == 0 {
		rows = append(rows, styles.Muted.Render("No places match"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, filterLine, "", strings.Join(rows, "\n"))
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

func (p *Plugin) renderRow(s typeahead.Suggestion, selected bool, width int) string {
	cursor := "  "
	nameStyle := styles.ListItemNormal
	if selected {
		cursor = styles.ListCursor.Render("> ")
		nameStyle = styles.ListItemSelected
	}
	used := ""
	if n := p.usage[s.ID]; n > 0 {
		used = styles.ListDate.Render(fmt.Sprintf("in %d %s", n, plural(n, "list", "lists")))
	}
	name := cursor + nameStyle.Render(ui.Truncate(s.Name, max(1, width-16)))
	gap := max(1, width-lipgloss.Width(name)-lipgloss.Width(used))
	line := name + strings.Repeat(" ", gap) + used
	addr := "    " + styles.Muted.Render(ui.Truncate(s.Address, max(1, width-4)))
	return line + "\n" + addr
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// IsFocused returns whether the plugin is focused.
func (p *Plugin) IsFocused() bool { return p.focused }

// SetFocused sets the focus state.
func (p *Plugin) SetFocused(f bool) { p.focused = f }

// ConsumesTextInput reports whether the filter is being typed into.
func (p *Plugin) ConsumesTextInput() bool { return p.filtering }

// FocusContext returns the current focus context.
func (p *Plugin) FocusContext() string {
	if p.filtering {
		return "explore-filter"
	}
	return "explore"
}

// Commands returns the available commands.
func (p *Plugin) Commands() []plugin.Command {
	if p.filtering {
		return []plugin.Command{
			{ID: "apply-filter", Key: "enter", Name: "Apply", Description: "Keep the filter", Category: plugin.CategoryNavigation, Context: "explore-filter", Priority: 1},
			{ID: "clear-filter", Key: "esc", Name: "Clear", Description: "Clear the filter", Category: plugin.CategoryNavigation, Context: "explore-filter", Priority: 2},
		}
	}
	return []plugin.Command{
		{ID: "filter", Key: "/", Name: "Filter", Description: "Filter places by name", Category: plugin.CategoryNavigation, Context: "explore", Priority: 1},
		{ID: "copy-mention", Key: "enter", Name: "Copy mention", Description: "Copy the place as a mention", Category: plugin.CategoryActions, Context: "explore", Priority: 2},
	}
}
