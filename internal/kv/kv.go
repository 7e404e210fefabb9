// Package kv is the local persistent key-value store that backs notes and
// preferences. Values are opaque byte blobs, written whole.
package kv

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Driver names accepted by Open.
const (
	DriverSQLite3 = "sqlite3" // github.com/mattn/go-sqlite3 (cgo)
	DriverSQLite  = "sqlite"  // modernc.org/sqlite (pure Go)
	DriverFile    = "file"    // one JSON file per key
)

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("kv: key not found")
	// ErrUnknownDriver is returned by Open for an unsupported driver.
	ErrUnknownDriver = errors.New("kv: unknown driver")
	// ErrInvalidKey is returned for keys outside [A-Za-z0-9._-].
	ErrInvalidKey = errors.New("kv: invalid key")
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Store reads and writes whole values by key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Watchable is implemented by stores that can report changes made by other
// processes. The channel yields the changed key and closes when ctx ends.
type Watchable interface {
	Watch(ctx context.Context) (<-chan string, error)
}

// Open opens a store for driver at path. For the SQLite drivers path is the
// database file; for the file driver it is a directory.
func Open(driver, path string) (Store, error) {
	switch driver {
	case DriverSQLite3, DriverSQLite:
		return OpenSQL(driver, path)
	case DriverFile:
		return OpenDir(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func checkKey(key string) error {
	if !keyRe.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
