// Package query filters and orders notes for display. The canonical
// pipeline is Sort(Filter(notes, search, tag)).
package query

import (
	"sort"
	"strings"

	"github.com/jeanpaul/driftnotes/internal/note"
)

// Filter retains notes matching both the search term and the tag
// filter. With both empty the input is returned unchanged. The search
// term matches case-insensitively against title or content; the tag
// filter requires exact membership in the note's tags. Relative order
// is preserved.
func Filter(notes []*note.Note, searchTerm, tagFilter string) []*note.Note {
	if searchTerm == "" && tagFilter == "" {
		return notes
	}

	needle := strings.ToLower(searchTerm)
	filtered := []*note.Note{}
	for _, n := range notes {
		searchMatch := searchTerm == "" ||
			strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle)
		tagMatch := tagFilter == "" || hasTag(n, tagFilter)

		if searchMatch && tagMatch {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func hasTag(n *note.Note, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Sort orders notes pinned-first, then by last update (creation time
// for never-saved notes) descending. The sort is stable so ties keep
// their input order.
func Sort(notes []*note.Note) []*note.Note {
	sorted := make([]*note.Note, len(notes))
	copy(sorted, notes)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pinned != sorted[j].Pinned {
			return sorted[i].Pinned
		}
		return sorted[i].UpdatedAt() > sorted[j].UpdatedAt()
	})
	return sorted
}

// AllTags returns the distinct tags across notes, sorted.
func AllTags(notes []*note.Note) []string {
	seen := map[string]bool{}
	for _, n := range notes {
		for _, t := range n.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
