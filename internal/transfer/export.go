// Package transfer moves notes across the store boundary: JSON
// export/import with collision-safe merging, plus single-note Markdown
// export and HTML clipping.
package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/store"
)

// Export is the snapshot shape written on export and accepted on
// import (import reads only the notes).
type Export struct {
	Notes      []*note.Note `json:"notes"`
	ExportedAt string       `json:"exported_at"`
	TotalNotes int          `json:"total_notes"`
}

// Snapshot captures the store's notes without mutating anything.
func Snapshot(db *store.DB) *Export {
	return &Export{
		Notes:      db.Notes,
		ExportedAt: time.Now().Format(time.RFC3339),
		TotalNotes: len(db.Notes),
	}
}

// Marshal renders the snapshot as indented JSON.
func (e *Export) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}

// NoteMarkdown renders one note as a standalone Markdown document.
func NoteMarkdown(n *note.Note) string {
	return fmt.Sprintf("# %s\n\n%s", n.Title, n.Content)
}
