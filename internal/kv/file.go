package kv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

const fileExt = ".json"

// DirStore keeps each key in its own file inside a directory. Writes go to a
// temp file that is renamed over the target, so readers never see a partial
// value.
type DirStore struct {
	dir string

	mu     sync.Mutex
	hashes map[string]uint64 // last content hash seen per key
}

// OpenDir opens a directory-backed store, creating the directory if needed.
func OpenDir(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &DirStore{dir: dir, hashes: make(map[string]uint64)}, nil
}

// Dir returns the backing directory.
func (s *DirStore) Dir() string { return s.dir }

func (s *DirStore) path(key string) string {
	return filepath.Join(s.dir, key+fileExt)
}

// Get returns the value for key or ErrNotFound.
func (s *DirStore) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	s.remember(key, data)
	return data, nil
}

// Set atomically replaces the value for key.
func (s *DirStore) Set(_ context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return fmt.Errorf("rename %s: %w", key, err)
	}
	s.remember(key, value)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *DirStore) Delete(_ context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.mu.Lock()
	delete(s.hashes, key)
	s.mu.Unlock()
	return nil
}

// Close is a no-op for directory stores.
func (s *DirStore) Close() error { return nil }

func (s *DirStore) remember(key string, data []byte) {
	s.mu.Lock()
	s.hashes[key] = xxhash.Sum64(data)
	s.mu.Unlock()
}

// changed reports whether data differs from the last content seen for key
// and records it.
func (s *DirStore) changed(key string, data []byte) bool {
	h := xxhash.Sum64(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.hashes[key]
	s.hashes[key] = h
	return !ok || prev != h
}

// Watch reports keys whose files were changed by someone other than this
// store. Events for the same key are debounced.
func (s *DirStore) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan string, 16)
	go func() {
		const debounceDelay = 100 * time.Millisecond
		timers := make(map[string]*time.Timer)
		fired := make(chan string, 16)

		defer func() {
			for _, t := range timers {
				t.Stop()
			}
			_ = watcher.Close()
			close(out)
		}()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				key, ok := s.keyFor(event.Name)
				if !ok {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				if t, ok := timers[key]; ok {
					t.Stop()
				}
				timers[key] = time.AfterFunc(debounceDelay, func() {
					select {
					case fired <- key:
					case <-ctx.Done():
					}
				})

			case key := <-fired:
				delete(timers, key)
				data, err := os.ReadFile(s.path(key))
				if errors.Is(err, fs.ErrNotExist) {
					data = nil
				} else if err != nil {
					continue
				}
				if !s.changed(key, data) {
					continue
				}
				select {
				case out <- key:
				case <-ctx.Done():
					return
				}

			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}

// keyFor maps a file path inside the store dir back to its key.
func (s *DirStore) keyFor(name string) (string, bool) {
	if filepath.Dir(name) != filepath.Clean(s.dir) {
		return "", false
	}
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, fileExt) {
		return "", false
	}
	key := strings.TrimSuffix(base, fileExt)
	if checkKey(key) != nil {
		return "", false
	}
	return key, true
}
