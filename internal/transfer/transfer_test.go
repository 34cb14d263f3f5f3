package transfer

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/store"
)

func testStore(t *testing.T) (*store.DB, *store.FileStore) {
	t.Helper()
	st := store.NewFileStore(filepath.Join(t.TempDir(), "db.json"))
	db, err := st.Load()
	require.NoError(t, err)
	return db, st
}

func addNote(t *testing.T, db *store.DB, title, content string) *note.Note {
	t.Helper()
	n := note.Create(title, content)
	require.NoError(t, n.PrepareForSave(title, content, false))
	db.Upsert(n)
	return n
}

func TestSnapshot(t *testing.T) {
	db, _ := testStore(t)
	addNote(t, db, "A", "alpha #one")
	addNote(t, db, "B", "beta #two")

	snap := Snapshot(db)
	assert.Equal(t, 2, snap.TotalNotes)
	assert.Len(t, snap.Notes, 2)
	assert.NotEmpty(t, snap.ExportedAt)
	assert.Len(t, db.Notes, 2, "snapshot does not mutate the store")
}

func TestImportRoundTrip(t *testing.T) {
	db, st := testStore(t)
	a := addNote(t, db, "A", "alpha #one")
	b := addNote(t, db, "B", "beta #two")
	require.NoError(t, st.Save(db))

	payload, err := Snapshot(db).Marshal()
	require.NoError(t, err)

	count, err := Import(db, st, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, db.Notes, 4)

	// Pre-existing notes are untouched.
	assert.Equal(t, a.ID, db.Notes[0].ID)
	assert.Equal(t, b.ID, db.Notes[1].ID)
	assert.Empty(t, db.Notes[0].ImportedAt)

	// Imported copies arrive in order, with fresh IDs and a stamp.
	assert.Equal(t, "A", db.Notes[2].Title)
	assert.Equal(t, "B", db.Notes[3].Title)
	assert.NotEqual(t, a.ID, db.Notes[2].ID)
	assert.NotEmpty(t, db.Notes[2].ImportedAt)

	// The merge is persisted.
	reloaded, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, reloaded.Notes, 4)
}

func TestImportMalformedJSON(t *testing.T) {
	db, st := testStore(t)
	addNote(t, db, "keep", "me")

	_, err := Import(db, st, []byte("{broken"))
	var ierr *ImportError
	require.ErrorAs(t, err, &ierr)
	assert.Len(t, db.Notes, 1, "store unchanged on bad payload")
}

func TestImportMissingNotes(t *testing.T) {
	db, st := testStore(t)

	_, err := Import(db, st, []byte(`{"exported_at": "2024-01-01T00:00:00Z"}`))
	var ierr *ImportError
	require.ErrorAs(t, err, &ierr)
	assert.Empty(t, db.Notes)
}

func TestImportEmptyNotes(t *testing.T) {
	db, st := testStore(t)

	count, err := Import(db, st, []byte(`{"notes": []}`))
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestExportShape(t *testing.T) {
	db, _ := testStore(t)
	addNote(t, db, "A", "alpha")

	data, err := Snapshot(db).Marshal()
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "notes")
	assert.Contains(t, raw, "exported_at")
	assert.Contains(t, raw, "total_notes")
}

func TestNoteMarkdown(t *testing.T) {
	n := note.Create("Trip", "pack the #tent")
	assert.Equal(t, "# Trip\n\npack the #tent", NoteMarkdown(n))
}

func TestClipHTML(t *testing.T) {
	n, err := ClipHTML("Clipped", []byte("<h2>Heading</h2><p>Some <strong>bold</strong> text</p>"))
	require.NoError(t, err)
	assert.Equal(t, "Clipped", n.Title)
	assert.Contains(t, n.Content, "## Heading")
	assert.Contains(t, n.Content, "**bold**")

	_, err = ClipHTML("empty", []byte("   "))
	assert.Error(t, err)
}

func TestClipPersists(t *testing.T) {
	db, st := testStore(t)

	n, err := Clip(db, st, "Recipe", []byte("<p>Knead the <em>dough</em> #baking</p>"))
	require.NoError(t, err)
	assert.Equal(t, []string{"baking"}, n.Tags)
	assert.NotEmpty(t, n.LastUpdated)

	reloaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, reloaded.Notes, 1)
	assert.Equal(t, "Recipe", reloaded.Notes[0].Title)
}
