package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcus/placenotes/internal/kv"
)

// StorageKey is the key holding the JSON array of notes.
const StorageKey = "notes"

var (
	// ErrNotFound is returned for an unknown note id.
	ErrNotFound = errors.New("note not found")
	// ErrCorrupt is returned when persisted notes cannot be decoded.
	ErrCorrupt = errors.New("stored notes are corrupt")
)

// Store owns the note collection. Every mutation builds a new collection,
// writes it whole, and only then replaces the in-memory copy, so a failed
// write leaves the previous state in place.
type Store struct {
	kv     kv.Store
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	mu    sync.RWMutex
	notes []Note
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Open loads the collection from store. When nothing has been saved yet the
// sample lists are written.
func Open(ctx context.Context, store kv.Store, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:     store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	notes, err := s.read(ctx)
	if errors.Is(err, kv.ErrNotFound) {
		if err := s.LoadSample(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.notes = notes
	return s, nil
}

func (s *Store) read(ctx context.Context) ([]Note, error) {
	data, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return notes, nil
}

// Reload replaces the in-memory collection with what is stored. It is used
// after another process changed the data.
func (s *Store) Reload(ctx context.Context) error {
	notes, err := s.read(ctx)
	if errors.Is(err, kv.ErrNotFound) {
		notes, err = nil, nil
	}
	if err != nil {
		s.logger.Error("notes: reload failed", "error", err)
		return err
	}
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
	return nil
}

// commit persists next and swaps it in. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, op string, next []Note) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode notes: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, data); err != nil {
		s.logger.Error("notes: save failed", "op", op, "error", err)
		return fmt.Errorf("save notes: %w", err)
	}
	s.notes = next
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Add creates a note from f and puts it first.
func (s *Store) Add(ctx context.Context, f Fields) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := Note{
		ID:        s.newID(),
		Title:     f.Title,
		Content:   f.Content,
		Emoji:     f.Emoji,
		IsPrivate: f.IsPrivate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	next := make([]Note, 0, len(s.notes)+1)
	next = append(next, n)
	next = append(next, s.notes...)
	if err := s.commit(ctx, "add", next); err != nil {
		return Note{}, err
	}
	s.logger.Debug("notes: added", "id", n.ID)
	return n, nil
}

// Update applies p to the note and bumps its update time.
func (s *Store) Update(ctx context.Context, id string, p Patch) error {
	return s.modify(ctx, "update", id, p.apply)
}

// TogglePrivacy flips the private flag of a note.
func (s *Store) TogglePrivacy(ctx context.Context, id string) error {
	return s.modify(ctx, "toggle-privacy", id, func(n *Note) { n.IsPrivate = !n.IsPrivate })
}

func (s *Store) modify(ctx context.Context, op, id string, fn func(*Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := append([]Note(nil), s.notes...)
	fn(&next[i])
	next[i].UpdatedAt = s.now()
	if next[i].UpdatedAt.Before(next[i].CreatedAt) {
		next[i].UpdatedAt = next[i].CreatedAt
	}
	return s.commit(ctx, op, next)
}

// Delete removes a note.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	next := make([]Note, 0, len(s.notes)-1)
	next = append(next, s.notes[:i]...)
	next = append(next, s.notes[i+1:]...)
	return s.commit(ctx, "delete", next)
}

// Get returns the note with id.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.notes...)
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// ClearAll wipes stored notes and restores the sample lists in one write.
// If the write fails the prior collection stays in place.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, "clear", SampleNotes(s.now()))
}

// LoadSample replaces the collection with the sample lists.
func (s *Store) LoadSample(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, "load-sample", SampleNotes(s.now()))
}
