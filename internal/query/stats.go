package query

import "github.com/jeanpaul/driftnotes/internal/note"

// Stats summarizes a note collection for the dashboard header.
type Stats struct {
	TotalNotes  int
	TotalWords  int
	PinnedCount int
}

func Summarize(notes []*note.Note) Stats {
	s := Stats{TotalNotes: len(notes)}
	for _, n := range notes {
		s.TotalWords += note.WordCount(n.Content)
		if n.Pinned {
			s.PinnedCount++
		}
	}
	return s
}
