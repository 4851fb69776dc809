// Package store keeps saved batches in a zstore collection.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
)

// Collection is the zstore collection holding saved batches.
const Collection = "batches"

// written by zstore on first open
const saltFile = "salt"

// ErrExists is returned when an entry id is already taken.
var ErrExists = errors.New("batch id already exists")

// ErrInvalidID is returned for ids that cannot name a collection file.
var ErrInvalidID = errors.New("invalid batch id")

// Entry is a saved batch. Records holds the batch's JSON record dump.
type Entry struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Seed       *uint64         `json:"seed,omitempty"`
	Records    json.RawMessage `json:"records"`
	Statements []string        `json:"statements"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Open opens or initializes the encrypted history on fsys and returns the
// store along with the batches collection. The caller closes the store.
func Open(fsys zfilesystem.ReadWriteFileFS, password string) (*zstore.Store, *zstore.Collection[Entry], error) {
	s, err := zstore.Open(fsys, []byte(password))
	if err != nil {
		return nil, nil, err
	}

	col, err := zstore.NewCollection[Entry](s, Collection)
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return s, col, nil
}

// IsInitialized reports whether a history exists on fsys.
func IsInitialized(fsys zfilesystem.ReadWriteFileFS) bool {
	_, err := fsys.ReadFile(saltFile)
	return err == nil
}

// Add stores e under its id. It never replaces an existing entry.
func Add(col *zstore.Collection[Entry], e Entry) error {
	if !ValidID(e.ID) {
		return fmt.Errorf("save %q: %w", e.ID, ErrInvalidID)
	}

	_, err := col.Get(e.ID)
	switch {
	case err == nil:
		return fmt.Errorf("save %s: %w", e.ID, ErrExists)
	case !errors.Is(err, zstore.ErrNotFound):
		return fmt.Errorf("save %s: %w", e.ID, err)
	}

	if err := col.Put(e.ID, e); err != nil {
		return fmt.Errorf("save %s: %w", e.ID, err)
	}
	return nil
}

// Newest sorts entries by creation time, newest first.
func Newest(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// ValidID rejects ids that could escape the collection directory.
func ValidID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\.`)
}
