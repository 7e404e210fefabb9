// Package editor holds the state of a list being edited: its draft fields,
// emoji candidates and mention entry, and commits the draft when the editor
// is left.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/marcus/placenotes/internal/bullet"
	"github.com/marcus/placenotes/internal/emoji"
	"github.com/marcus/placenotes/internal/notes"
	"github.com/marcus/placenotes/internal/typeahead"
)

// ErrClosed is returned when an editor is used after its note was deleted.
var ErrClosed = errors.New("editor: note was deleted")

// NoteStore is the persistence the editor needs.
type NoteStore interface {
	Add(ctx context.Context, f notes.Fields) (notes.Note, error)
	Update(ctx context.Context, id string, p notes.Patch) error
	Delete(ctx context.Context, id string) error
	Get(id string) (notes.Note, bool)
	TogglePrivacy(ctx context.Context, id string) error
}

// Categorizer returns ordered emoji candidates for a title.
type Categorizer func(title string) []string

// Mode tells whether the draft already has a stored note.
type Mode int

const (
	ModeNew Mode = iota
	ModeExisting
)

// Result describes what Save did.
type Result int

const (
	// ResultSkipped means title and content were blank and nothing was stored.
	ResultSkipped Result = iota
	// ResultCreated means a new note was added.
	ResultCreated
	// ResultUpdated means the stored note was changed.
	ResultUpdated
	// ResultUnchanged means the draft matched the stored note.
	ResultUnchanged
)

func (r Result) String() string {
	switch r {
	case ResultCreated:
		return "created"
	case ResultUpdated:
		return "updated"
	case ResultUnchanged:
		return "unchanged"
	default:
		return "skipped"
	}
}

// Editor is the in-memory draft of one list.
type Editor struct {
	store       NoteStore
	categorize  Categorizer
	suggestions []typeahead.Suggestion

	mode    Mode
	id      string
	deleted bool

	title     string
	content   string
	emoji     string
	isPrivate bool
	emojis    []string
	cursor    int

	tracker         typeahead.Tracker
	templateApplied bool
}

// Option configures an Editor.
type Option func(*Editor)

// WithCategorizer replaces the title to emoji lookup.
func WithCategorizer(c Categorizer) Option {
	return func(e *Editor) { e.categorize = c }
}

func newEditor(store NoteStore, suggestions []typeahead.Suggestion, opts []Option) *Editor {
	e := &Editor{
		store:       store,
		categorize:  emoji.ForTitle,
		suggestions: suggestions,
		emoji:       emoji.Default(),
		emojis:      emoji.Category(emoji.DefaultCategory),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// New starts a draft for a list that does not exist yet.
func New(store NoteStore, suggestions []typeahead.Suggestion, opts ...Option) *Editor {
	return newEditor(store, suggestions, opts)
}

// Open loads the note id into a draft.
func Open(store NoteStore, id string, suggestions []typeahead.Suggestion, opts ...Option) (*Editor, error) {
	n, ok := store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", notes.ErrNotFound, id)
	}
	e := newEditor(store, suggestions, opts)
	e.mode = ModeExisting
	e.id = n.ID
	e.title = n.Title
	e.content = n.Content
	e.isPrivate = n.IsPrivate
	if n.Emoji != "" {
		e.emoji = n.Emoji
	}
	e.emojis = emoji.Reorder(e.categorize(n.Title), e.emoji)
	e.cursor = len([]rune(e.content))
	return e, nil
}

// Mode returns whether the draft is new or backed by a stored note.
func (e *Editor) Mode() Mode { return e.mode }

// ID returns the stored note id, empty for a new draft.
func (e *Editor) ID() string { return e.id }

// Title returns the draft title.
func (e *Editor) Title() string { return e.title }

// Content returns the draft content.
func (e *Editor) Content() string { return e.content }

// Emoji returns the selected emoji.
func (e *Editor) Emoji() string { return e.emoji }

// IsPrivate returns the privacy flag.
func (e *Editor) IsPrivate() bool { return e.isPrivate }

// Emojis returns the emoji candidates in display order.
func (e *Editor) Emojis() []string { return append([]string(nil), e.emojis...) }

// Cursor returns the content cursor offset in runes.
func (e *Editor) Cursor() int { return e.cursor }

// SetCursor records the content cursor offset in runes.
func (e *Editor) SetCursor(pos int) {
	n := len([]rune(e.content))
	e.cursor = max(0, min(pos, n))
}

// SetTitle updates the title. For a new list the emoji candidates follow the
// title, and the selection moves to the first candidate if it dropped out.
func (e *Editor) SetTitle(title string) {
	e.title = title
	if e.mode != ModeNew {
		return
	}
	e.refreshEmojis()
}

func (e *Editor) refreshEmojis() {
	e.emojis = e.categorize(e.title)
	if len(e.emojis) > 0 && !emoji.Contains(e.emojis, e.emoji) {
		e.emoji = e.emojis[0]
	}
}

// SetContent applies a content edit: typed list markers become bullets,
// bullets continue on enter, and mention entry is tracked. It returns the
// resulting content.
//
// The cursor is expected at its post-edit offset in raw. It is shifted by
// whatever formatting added or removed, then clamped.
func (e *Editor) SetContent(raw string) string {
	e.content = bullet.Format(e.content, raw)
	e.tracker.Update(e.content)
	e.SetCursor(e.cursor + len([]rune(e.content)) - len([]rune(raw)))
	return e.content
}

// SelectEmoji sets the emoji.
func (e *Editor) SelectEmoji(em string) { e.emoji = em }

// TogglePrivacy flips the privacy flag. A stored note is updated right away.
func (e *Editor) TogglePrivacy(ctx context.Context) error {
	if e.mode == ModeExisting {
		if err := e.store.TogglePrivacy(ctx, e.id); err != nil {
			return err
		}
	}
	e.isPrivate = !e.isPrivate
	return nil
}

// Composing reports whether the suggestion list is open.
func (e *Editor) Composing() bool { return e.tracker.Active() }

// Keyword returns the partial name typed after the trigger.
func (e *Editor) Keyword() string { return e.tracker.Keyword() }

// Suggestions returns the places matching the current keyword, or nil when
// no mention is being composed.
func (e *Editor) Suggestions() []typeahead.Suggestion {
	if !e.tracker.Active() {
		return nil
	}
	return typeahead.Match(e.suggestions, e.tracker.Keyword())
}

// SelectSuggestion replaces the partial mention with a token for s.
func (e *Editor) SelectSuggestion(s typeahead.Suggestion) error {
	before := e.content
	out, err := e.tracker.Select(e.content, s)
	if err != nil {
		return err
	}
	e.content = out
	e.cursor += len([]rune(out)) - len([]rune(before))
	e.SetCursor(e.cursor)
	return nil
}

// CloseSuggestions dismisses mention entry.
func (e *Editor) CloseSuggestions() { e.tracker.Close() }

// ShowTemplates reports whether list templates should be offered: only for
// a new list with nothing typed yet.
func (e *Editor) ShowTemplates() bool {
	return e.mode == ModeNew && isBlank(e.title) && isBlank(e.content)
}

// ApplyTemplate fills an untitled draft from t. It returns false when the
// draft already has a title.
func (e *Editor) ApplyTemplate(t Template) bool {
	if e.title != "" {
		return false
	}
	e.title = t.Title
	e.content = t.Content
	e.cursor = len([]rune(e.content))
	e.refreshEmojis()
	e.templateApplied = true
	return true
}

// CanUndoTemplate reports whether UndoTemplate has something to undo.
func (e *Editor) CanUndoTemplate() bool { return e.templateApplied }

// UndoTemplate clears the draft back to its initial new-list state.
func (e *Editor) UndoTemplate() {
	e.title = ""
	e.content = ""
	e.cursor = 0
	e.emoji = emoji.Default()
	e.emojis = emoji.Category(emoji.DefaultCategory)
	e.tracker.Close()
	e.templateApplied = false
}

// Fields returns the values Save would store.
func (e *Editor) Fields() notes.Fields {
	title := strings.TrimSpace(e.title)
	if title == "" {
		title = notes.UntitledTitle
	}
	return notes.Fields{
		Title:     title,
		Content:   strings.TrimRightFunc(e.content, unicode.IsSpace),
		Emoji:     e.emoji,
		IsPrivate: e.isPrivate,
	}
}

// Empty reports whether both title and content are blank.
func (e *Editor) Empty() bool {
	return isBlank(e.title) && isBlank(e.content)
}

// Dirty reports whether Save would write anything.
func (e *Editor) Dirty() bool {
	if e.deleted || e.Empty() {
		return false
	}
	if e.mode == ModeNew {
		return true
	}
	n, ok := e.store.Get(e.id)
	return ok && n.Differs(e.Fields())
}

// Snapshot is a copy of the draft taken for a background save or delete.
// It touches only the store, so it may run off the UI goroutine while the
// editor keeps rendering.
type Snapshot struct {
	store  NoteStore
	mode   Mode
	id     string
	fields notes.Fields
	empty  bool
	closed bool
}

// Snapshot copies the draft as Save would see it now.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		store:  e.store,
		mode:   e.mode,
		id:     e.id,
		fields: e.Fields(),
		empty:  e.Empty(),
		closed: e.deleted,
	}
}

// Fields returns the values the snapshot stores.
func (s Snapshot) Fields() notes.Fields { return s.fields }

// Save commits the snapshot. A blank draft stores nothing, a new draft is
// added, and a stored note is updated only if a tracked field changed. The
// returned id is the stored note's id.
func (s Snapshot) Save(ctx context.Context) (Result, string, error) {
	if s.closed {
		return ResultSkipped, s.id, ErrClosed
	}
	if s.empty {
		return ResultSkipped, s.id, nil
	}

	if s.mode == ModeNew {
		n, err := s.store.Add(ctx, s.fields)
		if err != nil {
			return ResultSkipped, "", err
		}
		return ResultCreated, n.ID, nil
	}

	stored, ok := s.store.Get(s.id)
	if !ok {
		return ResultSkipped, s.id, fmt.Errorf("%w: %s", notes.ErrNotFound, s.id)
	}
	if !stored.Differs(s.fields) {
		return ResultUnchanged, s.id, nil
	}
	if err := s.store.Update(ctx, s.id, notes.PatchFrom(s.fields)); err != nil {
		return ResultSkipped, s.id, err
	}
	return ResultUpdated, s.id, nil
}

// Delete removes the stored note, if there is one.
func (s Snapshot) Delete(ctx context.Context) error {
	if s.mode != ModeExisting {
		return nil
	}
	return s.store.Delete(ctx, s.id)
}

// Save commits the draft and, for a new list, switches the editor to the
// created note.
func (e *Editor) Save(ctx context.Context) (Result, error) {
	res, id, err := e.Snapshot().Save(ctx)
	if res == ResultCreated {
		e.mode = ModeExisting
		e.id = id
	}
	return res, err
}

// Delete removes the stored note. After Delete the editor refuses to save.
func (e *Editor) Delete(ctx context.Context) error {
	if err := e.Snapshot().Delete(ctx); err != nil {
		return err
	}
	e.deleted = true
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
