package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeanpaul/driftnotes/internal/note"
)

func mk(title, content string, pinned bool, lastUpdated string) *note.Note {
	return &note.Note{
		ID:          note.GenerateID(),
		Title:       title,
		Content:     content,
		Tags:        note.ExtractTags(content),
		Pinned:      pinned,
		Timestamp:   "2024-01-01T00:00:00Z",
		LastUpdated: lastUpdated,
	}
}

func titles(notes []*note.Note) []string {
	out := []string{}
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestFilterIdentity(t *testing.T) {
	notes := []*note.Note{mk("A", "a", false, ""), mk("B", "b", false, "")}
	got := Filter(notes, "", "")
	assert.Equal(t, notes, got, "empty filters return the input unchanged")
}

func TestFilterSearch(t *testing.T) {
	notes := []*note.Note{
		mk("Shopping list", "buy milk", false, ""),
		mk("Work log", "Reviewed the MILK report", false, ""),
		mk("Diary", "nothing happened", false, ""),
	}

	got := Filter(notes, "milk", "")
	assert.Equal(t, []string{"Shopping list", "Work log"}, titles(got),
		"search is case-insensitive over title and content")

	got = Filter(notes, "SHOPPING", "")
	assert.Equal(t, []string{"Shopping list"}, titles(got))

	got = Filter(notes, "absent", "")
	assert.Empty(t, got)
}

func TestFilterTag(t *testing.T) {
	notes := []*note.Note{
		mk("A", "doing #work", false, ""),
		mk("B", "#fun #work trip", false, ""),
		mk("C", "no tags here", false, ""),
	}

	got := Filter(notes, "", "work")
	assert.Equal(t, []string{"A", "B"}, titles(got))

	got = Filter(notes, "trip", "work")
	assert.Equal(t, []string{"B"}, titles(got), "search and tag combine with AND")

	got = Filter(notes, "", "wor")
	assert.Empty(t, got, "tag filter is exact membership, not substring")
}

func TestSortPinnedThenRecency(t *testing.T) {
	notes := []*note.Note{
		mk("A", "doing #work", false, "2024-01-01T00:00:00Z"),
		mk("B", "#fun #work trip", true, "2024-01-02T00:00:00Z"),
	}

	got := Sort(Filter(notes, "", "work"))
	assert.Equal(t, []string{"B", "A"}, titles(got), "pinned notes come first")

	notes = []*note.Note{
		mk("old", "x", false, "2024-01-01T00:00:00Z"),
		mk("new", "x", false, "2024-06-01T00:00:00Z"),
		mk("pinned-old", "x", true, "2023-01-01T00:00:00Z"),
	}
	got = Sort(notes)
	assert.Equal(t, []string{"pinned-old", "new", "old"}, titles(got))
}

func TestSortStable(t *testing.T) {
	a := mk("first", "x", false, "2024-01-01T00:00:00Z")
	b := mk("second", "x", false, "2024-01-01T00:00:00Z")
	got := Sort([]*note.Note{a, b})
	assert.Equal(t, []string{"first", "second"}, titles(got),
		"equal keys keep input order")
}

func TestSortFallsBackToTimestamp(t *testing.T) {
	unsaved := mk("unsaved", "x", false, "")
	unsaved.Timestamp = "2024-03-01T00:00:00Z"
	saved := mk("saved", "x", false, "2024-02-01T00:00:00Z")

	got := Sort([]*note.Note{saved, unsaved})
	assert.Equal(t, []string{"unsaved", "saved"}, titles(got),
		"never-saved notes sort by creation time")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	a := mk("a", "x", false, "2024-01-01T00:00:00Z")
	b := mk("b", "x", true, "2024-01-02T00:00:00Z")
	in := []*note.Note{a, b}
	Sort(in)
	assert.Equal(t, []string{"a", "b"}, titles(in))
}

func TestAllTags(t *testing.T) {
	notes := []*note.Note{
		mk("A", "#work #fun", false, ""),
		mk("B", "#work again", false, ""),
	}
	assert.Equal(t, []string{"fun", "work"}, AllTags(notes))
}

func TestSummarize(t *testing.T) {
	notes := []*note.Note{
		mk("A", "one two three", true, ""),
		mk("B", "four five", false, ""),
	}
	s := Summarize(notes)
	assert.Equal(t, 2, s.TotalNotes)
	assert.Equal(t, 5, s.TotalWords)
	assert.Equal(t, 1, s.PinnedCount)
}
