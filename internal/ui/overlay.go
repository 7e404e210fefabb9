// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle applies a dim gray color to background content behind modals.
// Existing ANSI codes are stripped first since SGR 2 (faint) does not combine
// reliably with other colors.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and applies dim gray styling.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// compositeRow places fgLine onto bgLine at column startX. With dim set the
// background is stripped and dimmed, otherwise its styling is kept.
func compositeRow(bgLine, fgLine string, startX, fgWidth int, dim bool) string {
	if dim {
		bgLine = ansi.Strip(bgLine)
	}
	paint := func(s string) string {
		if dim {
			return DimStyle.Render(s)
		}
		return s
	}
	bgWidth := ansi.StringWidth(bgLine)

	var b strings.Builder
	if startX > 0 {
		left := ansi.Truncate(bgLine, startX, "")
		b.WriteString(paint(left))
		if w := ansi.StringWidth(left); w < startX {
			b.WriteString(strings.Repeat(" ", startX-w))
		}
	}

	b.WriteString(fgLine)
	if pad := fgWidth - ansi.StringWidth(fgLine); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	if rightX := startX + fgWidth; bgWidth > rightX {
		b.WriteString(paint(ansi.Cut(bgLine, rightX, bgWidth)))
	}
	return b.String()
}

func overlay(background, fg string, x, y, height int, dim bool) string {
	bgLines := strings.Split(background, "\n")
	fgLines := strings.Split(fg, "\n")
	fgWidth := maxLineWidth(fgLines)

	x = max(x, 0)
	y = max(y, 0)
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		bg := bgLines[row]
		if i := row - y; i >= 0 && i < len(fgLines) {
			out = append(out, compositeRow(bg, fgLines[i], x, fgWidth, dim))
			continue
		}
		if dim {
			bg = dimLine(bg)
		}
		out = append(out, bg)
	}
	return strings.Join(out, "\n")
}

// OverlayModal composites a modal centered on top of a dimmed background.
func OverlayModal(background, modal string, width, height int) string {
	lines := strings.Split(modal, "\n")
	x := (width - maxLineWidth(lines)) / 2
	y := (height - len(lines)) / 2
	return overlay(background, modal, x, y, height, true)
}

// OverlayAt draws fg over background with its top-left corner at x, y,
// leaving the rest of the background untouched.
func OverlayAt(background, fg string, x, y, height int) string {
	return overlay(background, fg, x, y, height, false)
}
