// Package mention encodes and decodes inline place references embedded in
// note content. A reference is serialized as {@}[Display Name](ref-id).
package mention

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"strings"
)

const (
	// Trigger is the character that starts mention entry in the editor.
	Trigger = "@"

	tokenPrefix = "{" + Trigger + "}"
)

// ErrReservedDelimiter is returned by Encode when a display name contains
// "]" or a reference id contains ")".
var ErrReservedDelimiter = errors.New("mention: reserved delimiter in token field")

// ErrEmptyField is returned by Encode when a display name or reference id is empty.
var ErrEmptyField = errors.New("mention: empty token field")

var tokenRe = regexp.MustCompile(`\{@\}\[([^\]]+)\]\(([^)]+)\)`)

// Kind distinguishes literal spans from mention segments.
type Kind int

const (
	KindText Kind = iota
	KindMention
)

// Segment is one piece of decoded content.
type Segment struct {
	Kind Kind
	// Text holds the verbatim span for KindText segments.
	Text string
	// Name and ID are set for KindMention segments.
	Name string
	ID   string
}

// IsMention reports whether the segment is a mention.
func (s Segment) IsMention() bool { return s.Kind == KindMention }

// String returns the textual form of the segment as it appears in content.
func (s Segment) String() string {
	if s.Kind == KindMention {
		return tokenPrefix + "[" + s.Name + "](" + s.ID + ")"
	}
	return s.Text
}

// Encode produces the serialized token for a reference.
func Encode(name, id string) (string, error) {
	if name == "" || id == "" {
		return "", ErrEmptyField
	}
	if strings.Contains(name, "]") {
		return "", fmt.Errorf("%w: name %q contains ']'", ErrReservedDelimiter, name)
	}
	if strings.Contains(id, ")") {
		return "", fmt.Errorf("%w: id %q contains ')'", ErrReservedDelimiter, id)
	}
	return Segment{Kind: KindMention, Name: name, ID: id}.String(), nil
}

// Decode scans text left to right and yields literal spans and mentions.
// Matches never overlap. Concatenating the String of every yielded segment
// reproduces text exactly. The sequence may be ranged over more than once.
func Decode(text string) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		last := 0
		for _, loc := range tokenRe.FindAllStringSubmatchIndex(text, -1) {
			if loc[0] > last {
				if !yield(Segment{Kind: KindText, Text: text[last:loc[0]]}) {
					return
				}
			}
			seg := Segment{
				Kind: KindMention,
				Name: text[loc[2]:loc[3]],
				ID:   text[loc[4]:loc[5]],
			}
			if !yield(seg) {
				return
			}
			last = loc[1]
		}
		if last < len(text) {
			yield(Segment{Kind: KindText, Text: text[last:]})
		}
	}
}

// Segments materializes Decode(text).
func Segments(text string) []Segment {
	var out []Segment
	for seg := range Decode(text) {
		out = append(out, seg)
	}
	return out
}

// Reconstruct joins segments back into content.
func Reconstruct(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.String())
	}
	return b.String()
}

// Count returns the number of mention tokens in text.
func Count(text string) int {
	return len(tokenRe.FindAllStringIndex(text, -1))
}

// Mentions returns the mention segments of text in order.
func Mentions(text string) []Segment {
	var out []Segment
	for seg := range Decode(text) {
		if seg.IsMention() {
			out = append(out, seg)
		}
	}
	return out
}

// PlainText replaces every token with its display name.
func PlainText(text string) string {
	return Render(text, func(s Segment) string { return s.Name })
}

// Render rewrites text, passing mentions through fn and keeping literal
// spans verbatim.
func Render(text string, fn func(Segment) string) string {
	var b strings.Builder
	b.Grow(len(text))
	for seg := range Decode(text) {
		if seg.IsMention() {
			b.WriteString(fn(seg))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
