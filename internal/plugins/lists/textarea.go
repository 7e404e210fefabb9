package lists

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
)

func runeLen(s string) int { return len([]rune(s)) }

// cursorOffset returns the textarea cursor as a rune offset into Value().
func cursorOffset(ta textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	row := min(ta.Line(), len(lines)-1)
	off := 0
	for _, l := range lines[:row] {
		off += runeLen(l) + 1
	}
	info := ta.LineInfo()
	col := min(info.StartColumn+info.ColumnOffset, runeLen(lines[row]))
	return off + col
}

// setValueAt replaces the textarea content and puts the cursor at the rune
// offset. Uses CursorUp since textarea has no SetRow API.
func setValueAt(ta *textarea.Model, text string, offset int) {
	ta.SetValue(text)
	offset = max(0, min(offset, runeLen(text)))

	row, col := 0, offset
	for _, l := range strings.Split(text, "\n") {
		n := runeLen(l)
		if col <= n {
			break
		}
		col -= n + 1
		row++
	}

	// SetValue leaves the cursor on the last line.
	for guard := runeLen(text) + ta.LineCount(); ta.Line() > row && guard > 0; guard-- {
		ta.CursorUp()
	}
	ta.SetCursor(col)
}
