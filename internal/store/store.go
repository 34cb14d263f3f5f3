// Package store persists the whole note collection plus settings as a
// single JSON document. Every mutation rewrites the file wholesale;
// there are no partial updates and no versioning. The Store interface
// exists so a transactional backend could replace the file later
// without touching callers.
package store

import (
	"fmt"

	"github.com/jeanpaul/driftnotes/internal/note"
)

// Settings is the per-store configuration that lives alongside notes.
type Settings struct {
	Theme         string `json:"theme"`
	Locked        bool   `json:"locked"`
	VaultPassword string `json:"vault_password,omitempty"`
	AIEnabled     bool   `json:"ai_enabled"`
}

// Themes lists the named presets a store may carry.
var Themes = []string{"nebula", "ocean", "forest", "classic"}

// DB is the persisted unit: an ordered note sequence and settings.
type DB struct {
	Notes    []*note.Note `json:"notes"`
	Settings Settings     `json:"settings"`
}

// Store loads and saves a DB as one unit.
type Store interface {
	Load() (*DB, error)
	Save(db *DB) error
	Path() string
}

// CorruptStateError means the backing state exists but cannot be
// decoded. The caller decides whether to reinitialize or abort; the
// store never overwrites unreadable state on its own.
type CorruptStateError struct {
	Path string
	Err  error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("backing state %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptStateError) Unwrap() error { return e.Err }

// DefaultSettings returns the settings a brand-new store starts with.
func DefaultSettings() Settings {
	return Settings{Theme: "nebula", Locked: false, AIEnabled: true}
}

// Upsert replaces the note with the same ID in place, preserving its
// position, or appends the note if it is new. This is the only
// mutation path for both create and edit.
func (db *DB) Upsert(n *note.Note) {
	for i, existing := range db.Notes {
		if existing.ID == n.ID {
			db.Notes[i] = n
			return
		}
	}
	db.Notes = append(db.Notes, n)
}

// Delete removes the note with the given ID. Deleting an absent ID is
// a no-op, not an error.
func (db *DB) Delete(id string) {
	for i, n := range db.Notes {
		if n.ID == id {
			db.Notes = append(db.Notes[:i], db.Notes[i+1:]...)
			return
		}
	}
}

// Find returns the note with the given ID, or nil.
func (db *DB) Find(id string) *note.Note {
	for _, n := range db.Notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
