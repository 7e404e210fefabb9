// Package notes owns the collection of place lists and persists it as a
// single JSON array in the local key-value store.
package notes

import (
	"strings"
	"time"
)

// UntitledTitle is stored when a list is saved without a title.
const UntitledTitle = "Untitled"

// Note is a saved list.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Emoji     string    `json:"emoji"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Fields are the user-editable parts of a note.
type Fields struct {
	Title     string
	Content   string
	Emoji     string
	IsPrivate bool
}

// Fields returns the editable fields of n.
func (n Note) Fields() Fields {
	return Fields{Title: n.Title, Content: n.Content, Emoji: n.Emoji, IsPrivate: n.IsPrivate}
}

// Differs reports whether any tracked field of n differs from f.
func (n Note) Differs(f Fields) bool {
	return n.Fields() != f
}

// Patch carries a partial update. Nil fields are left unchanged.
type Patch struct {
	Title     *string
	Content   *string
	Emoji     *string
	IsPrivate *bool
}

// PatchFrom returns a patch that sets every field to f.
func PatchFrom(f Fields) Patch {
	return Patch{Title: &f.Title, Content: &f.Content, Emoji: &f.Emoji, IsPrivate: &f.IsPrivate}
}

func (p Patch) apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Emoji != nil {
		n.Emoji = *p.Emoji
	}
	if p.IsPrivate != nil {
		n.IsPrivate = *p.IsPrivate
	}
}

// Preview returns the first two non-blank lines of content joined by a
// bullet, or "Empty note".
func Preview(content string) string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	if len(lines) == 0 {
		return "Empty note"
	}
	return strings.Join(lines, " • ")
}
