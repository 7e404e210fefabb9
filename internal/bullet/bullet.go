// Package bullet turns typed list markers into bullet glyphs and continues
// bulleted lists when the user presses enter.
package bullet

import (
	"regexp"
	"strings"
)

// Glyph is the canonical bullet character.
const Glyph = "•"

// tiers maps the number of leading spaces before a typed marker to the
// indentation written in front of the glyph. Other depths are left alone.
var tiers = map[int]string{
	0: "  ",
	2: "    ",
	4: "      ",
}

var bulletLineRe = regexp.MustCompile(`^(\s*)` + Glyph + ` (.+)$`)

// Format returns newText with markers normalized and, when the edit inserted
// a single line break after a non-empty bullet line onto an empty line, the
// bullet continued on the new line. It has no side effects.
func Format(oldText, newText string) string {
	text := Normalize(newText)
	return continueList(oldText, text)
}

// Normalize rewrites "- " and "* " markers at the start of a line.
func Normalize(text string) string {
	if !strings.ContainsAny(text, "-*") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = normalizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func normalizeLine(line string) string {
	spaces := len(line) - len(strings.TrimLeft(line, " "))
	indent, ok := tiers[spaces]
	if !ok {
		return line
	}
	rest := line[spaces:]
	if !strings.HasPrefix(rest, "- ") && !strings.HasPrefix(rest, "* ") {
		return line
	}
	return indent + Glyph + " " + rest[2:]
}

// IsBulletLine reports whether line is a bullet with content after the glyph.
func IsBulletLine(line string) bool {
	return bulletLineRe.MatchString(line)
}

func continueList(oldText, text string) string {
	if strings.Count(text, "\n") != strings.Count(oldText, "\n")+1 {
		return text
	}
	brk := insertedBreak(oldText, text)
	if brk < 0 {
		return text
	}

	start := strings.LastIndexByte(text[:brk], '\n') + 1
	m := bulletLineRe.FindStringSubmatch(text[start:brk])
	if m == nil {
		return text
	}

	rest := text[brk+1:]
	if rest != "" && rest[0] != '\n' {
		return text
	}
	return text[:brk+1] + m[1] + Glyph + " " + rest
}

// insertedBreak locates the line break added between oldText and text, or
// returns -1. When a lone newline lands inside a run of newlines the leftmost
// position is used, which is where enter at the end of a line puts it.
func insertedBreak(oldText, text string) int {
	p := 0
	for p < len(oldText) && p < len(text) && oldText[p] == text[p] {
		p++
	}
	s := 0
	maxSuffix := min(len(oldText), len(text)) - p
	for s < maxSuffix && oldText[len(oldText)-1-s] == text[len(text)-1-s] {
		s++
	}

	inserted := text[p : len(text)-s]
	i := strings.IndexByte(inserted, '\n')
	if i < 0 {
		return -1
	}
	pos := p + i
	if inserted == "\n" {
		for pos > 0 && text[pos-1] == '\n' {
			pos--
		}
	}
	return pos
}

// Level returns the nesting depth of a formatted bullet line, 0 for the
// outermost tier.
func Level(line string) (int, bool) {
	spaces := len(line) - len(strings.TrimLeft(line, " "))
	if spaces < 2 || spaces%2 != 0 || !strings.HasPrefix(line[spaces:], Glyph+" ") {
		return 0, false
	}
	return spaces/2 - 1, true
}
