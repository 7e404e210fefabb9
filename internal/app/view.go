package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/placenotes/internal/keymap"
	"github.com/marcus/placenotes/internal/plugin"
	"github.com/marcus/placenotes/internal/styles"
	"github.com/marcus/placenotes/internal/ui"
)

const (
	headerHeight = 2 // header line + spacing
	footerHeight = 1
	minWidth     = 50
	minHeight    = 16
)

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.width < minWidth || m.height < minHeight {
		msg := fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: %dx%d",
			m.width, m.height, minWidth, minHeight)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.Danger.Render(msg))
	}

	contentHeight := m.height - headerHeight
	if m.showFooter {
		contentHeight -= footerHeight
	}
	contentHeight = max(0, contentHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderContent(m.width, contentHeight))
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter())
	}

	bg := b.String()
	switch {
	case m.confirm != nil:
		return ui.OverlayModal(bg, m.confirm.View(), m.width, m.height)
	case m.showHelp:
		return ui.OverlayModal(bg, styles.ModalBox.Render(m.buildHelpContent()), m.width, m.height)
	}
	return bg
}

func (m Model) renderHeader() string {
	title := styles.Title.Render(" Placenotes") + " "

	var tabs []string
	for i, p := range m.registry.Plugins() {
		label := fmt.Sprintf("%d %s %s", i+1, p.Icon(), p.Name())
		tabs = append(tabs, styles.RenderTab(label, i == m.activePlugin))
	}
	tabBar := strings.Join(tabs, " ")

	spacing := max(0, m.width-lipgloss.Width(title)-lipgloss.Width(tabBar))
	header := title + strings.Repeat(" ", spacing) + tabBar
	return styles.Header.Width(m.width).MaxWidth(m.width).Render(header)
}

func (m Model) renderContent(width, height int) string {
	p := m.ActivePlugin()
	if p == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.Muted.Render("No tabs loaded"))
	}
	if height == 0 {
		return ""
	}
	content := p.View(width, height)
	// MaxHeight keeps tall plugin content from pushing the header off-screen.
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(content)
}

// renderFooter renders the bottom bar with key hints and status.
func (m Model) renderFooter() string {
	var status string
	if m.statusMsg != "" {
		toastStyle := styles.ToastSuccess
		if m.statusIsError {
			toastStyle = styles.ToastError
		}
		status = toastStyle.Render(m.statusMsg)
	}

	available := m.width - lipgloss.Width(status) - 2
	hints := renderHintLineTruncated(m.footerHints(), available)
	spacing := max(1, m.width-lipgloss.Width(hints)-lipgloss.Width(status))
	footer := hints + strings.Repeat(" ", spacing) + status
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(footer)
}

type footerHint struct {
	keys  string
	label string
}

func (m Model) footerHints() []footerHint {
	// Plugin hints first, they are more relevant
	var hints []footerHint
	if p := m.ActivePlugin(); p != nil {
		hints = pluginFooterHints(p, m.activeContext)
	}
	if m.consumesTextInput() {
		return hints
	}
	hints = append(hints, footerHint{keys: "1-4", label: "tabs"})
	for _, hint := range []struct{ id, label string }{
		{keymap.CmdToggleHelp, "help"},
		{keymap.CmdQuit, "quit"},
	} {
		if keys := m.keymap.KeysFor(hint.id, "global"); len(keys) > 0 {
			hints = append(hints, footerHint{keys: keys[0], label: hint.label})
		}
	}
	return hints
}

func pluginFooterHints(p plugin.Plugin, context string) []footerHint {
	cmds := sortedCommands(p, context)
	hints := make([]footerHint, 0, len(cmds))
	for _, c := range cmds {
		hints = append(hints, footerHint{keys: c.Key, label: c.Name})
	}
	return hints
}

// sortedCommands returns the plugin's commands for context, most important
// first.
func sortedCommands(p plugin.Plugin, context string) []plugin.Command {
	var cmds []plugin.Command
	for _, c := range p.Commands() {
		if c.Context == context && c.Key != "" {
			cmds = append(cmds, c)
		}
	}
	priority := func(c plugin.Command) int {
		if c.Priority == 0 {
			return 99
		}
		return c.Priority
	}
	sort.SliceStable(cmds, func(i, j int) bool {
		return priority(cmds[i]) < priority(cmds[j])
	})
	return cmds
}

// renderHintLineTruncated renders hints but stops adding when maxWidth is exceeded.
func renderHintLineTruncated(hints []footerHint, maxWidth int) string {
	if len(hints) == 0 || maxWidth <= 0 {
		return ""
	}
	var result string
	for _, hint := range hints {
		if hint.keys == "" || hint.label == "" {
			continue
		}
		part := fmt.Sprintf("%s %s", styles.KeyHint.Render(hint.keys), hint.label)
		candidate := part
		if result != "" {
			candidate = result + "  " + part
		}
		if lipgloss.Width(candidate) > maxWidth {
			break
		}
		result = candidate
	}
	return result
}

// buildHelpContent creates the help modal content.
func (m Model) buildHelpContent() string {
	var b strings.Builder
	b.WriteString(styles.ModalTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(styles.Title.Render("Global"))
	b.WriteString("\n")
	seen := make(map[string]bool)
	for _, binding := range m.keymap.BindingsForContext("global") {
		if seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true
		keys := m.keymap.KeysFor(binding.Command, "global")
		if len(keys) > 2 {
			keys = keys[:2]
		}
		writeHelpRow(&b, strings.Join(keys, ", "), strings.ReplaceAll(binding.Command, "-", " "))
	}

	if p := m.ActivePlugin(); p != nil {
		if cmds := sortedCommands(p, p.FocusContext()); len(cmds) > 0 {
			b.WriteString("\n")
			b.WriteString(styles.Title.Render(p.Name()))
			b.WriteString("\n")
			for _, c := range cmds {
				writeHelpRow(&b, c.Key, c.Description)
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Press ? or esc to close"))
	return b.String()
}

func writeHelpRow(b *strings.Builder, keys, desc string) {
	fmt.Fprintf(b, "  %s %s\n", styles.Muted.Render(fmt.Sprintf("%-11s", keys)), desc)
}
