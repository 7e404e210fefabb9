// Package typeahead filters mention suggestions and tracks whether the user
// is currently composing a mention in the note content.
package typeahead

import (
	"errors"
	"strings"
	"unicode"

	"github.com/marcus/placenotes/internal/mention"
)

// ErrNotComposing is returned when a suggestion is selected outside of
// mention entry.
var ErrNotComposing = errors.New("typeahead: not composing a mention")

// Suggestion is a place that can be mentioned.
type Suggestion struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
}

// Match returns the suggestions whose name contains keyword, ignoring case.
// An empty keyword returns every suggestion. Order is preserved.
func Match(all []Suggestion, keyword string) []Suggestion {
	if keyword == "" {
		return append([]Suggestion(nil), all...)
	}
	kw := strings.ToLower(keyword)
	var out []Suggestion
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Name), kw) {
			out = append(out, s)
		}
	}
	return out
}

// State is the mention entry state.
type State int

const (
	Idle State = iota
	Composing
)

// String returns a readable state name.
func (s State) String() string {
	if s == Composing {
		return "Composing"
	}
	return "Idle"
}

// Tracker follows content edits and decides when the suggestion list is open.
type Tracker struct {
	state   State
	keyword string
}

// State returns the current state.
func (t *Tracker) State() State { return t.state }

// Keyword returns the text typed after the trigger while composing.
func (t *Tracker) Keyword() string { return t.keyword }

// Active reports whether a mention is being composed.
func (t *Tracker) Active() bool { return t.state == Composing }

// Update applies a content change.
func (t *Tracker) Update(text string) {
	at := strings.LastIndex(text, mention.Trigger)
	switch {
	case at == -1:
		t.Close()
	case at == len(text)-len(mention.Trigger):
		t.state = Composing
		t.keyword = ""
	case t.state == Composing:
		after := text[at+len(mention.Trigger):]
		if strings.ContainsFunc(after, unicode.IsSpace) {
			t.Close()
			return
		}
		t.keyword = after
	}
}

// Close dismisses mention entry without selecting anything.
func (t *Tracker) Close() {
	t.state = Idle
	t.keyword = ""
}

// Select replaces the trigger and partial keyword in text with the token for
// s and returns to Idle.
func (t *Tracker) Select(text string, s Suggestion) (string, error) {
	if t.state != Composing {
		return text, ErrNotComposing
	}
	out, err := Splice(text, s)
	if err != nil {
		return text, err
	}
	t.Close()
	return out, nil
}

// Splice replaces the last trigger and the word typed after it with the
// mention token for s. Text from the first whitespace after the trigger on
// is kept unchanged. Text without a trigger is returned as is.
func Splice(text string, s Suggestion) (string, error) {
	at := strings.LastIndex(text, mention.Trigger)
	if at < 0 {
		return text, nil
	}
	token, err := mention.Encode(s.Name, s.ID)
	if err != nil {
		return text, err
	}
	tail := ""
	if i := strings.IndexFunc(text[at:], unicode.IsSpace); i > 0 {
		tail = text[at+i:]
	}
	return text[:at] + token + tail, nil
}
