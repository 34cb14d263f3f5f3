package vault

import (
	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/store"
)

// Guard fronts a DB with the gate: note reads and writes are refused
// with ErrLocked while the gate is Locked. Settings access is never
// gated.
type Guard struct {
	gate *Gate
	db   *store.DB
	st   store.Store
}

func NewGuard(gate *Gate, db *store.DB, st store.Store) *Guard {
	return &Guard{gate: gate, db: db, st: st}
}

// Notes returns the note sequence, or ErrLocked.
func (gd *Guard) Notes() ([]*note.Note, error) {
	if !gd.gate.Unlocked() {
		return nil, ErrLocked
	}
	return gd.db.Notes, nil
}

// Upsert applies the note and persists the store, or refuses with
// ErrLocked.
func (gd *Guard) Upsert(n *note.Note) error {
	if !gd.gate.Unlocked() {
		return ErrLocked
	}
	gd.db.Upsert(n)
	return gd.st.Save(gd.db)
}

// Delete removes the note and persists the store, or refuses with
// ErrLocked.
func (gd *Guard) Delete(id string) error {
	if !gd.gate.Unlocked() {
		return ErrLocked
	}
	gd.db.Delete(id)
	return gd.st.Save(gd.db)
}

// SaveSettings persists setting changes. Allowed in any gate state so
// the lock itself can always be toggled.
func (gd *Guard) SaveSettings() error {
	return gd.st.Save(gd.db)
}
