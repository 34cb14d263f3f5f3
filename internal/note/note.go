package note

import (
	"fmt"
	"time"
)

// Note is one user document. Timestamps are RFC 3339 strings so the
// backing JSON stays readable and sorts lexicographically.
type Note struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Pinned      bool     `json:"pinned"`
	Timestamp   string   `json:"timestamp"`
	LastUpdated string   `json:"last_updated,omitempty"`
	ImportedAt  string   `json:"imported_at,omitempty"`
}

// ValidationError reports a note that cannot be saved as-is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("note validation failed: %s %s", e.Field, e.Reason)
}

// Create builds a fresh note. Nothing is validated here; validation
// happens when the note is prepared for saving.
func Create(title, content string) *Note {
	return &Note{
		ID:        GenerateID(),
		Title:     title,
		Content:   content,
		Tags:      ExtractTags(content),
		Pinned:    false,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// PrepareForSave applies the edited fields and stamps last_updated.
// Tags are always recomputed from content so they never drift from it.
// The creation timestamp is never touched.
func (n *Note) PrepareForSave(title, content string, pinned bool) error {
	if title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if content == "" {
		return &ValidationError{Field: "content", Reason: "must not be empty"}
	}

	n.Title = title
	n.Content = content
	n.Tags = ExtractTags(content)
	n.Pinned = pinned
	n.LastUpdated = time.Now().Format(time.RFC3339)
	return nil
}

// Saved reports whether the note has ever been persisted. A note
// without last_updated was created but never saved.
func (n *Note) Saved() bool {
	return n.LastUpdated != ""
}

// UpdatedAt returns last_updated, falling back to the creation
// timestamp for notes that were never saved.
func (n *Note) UpdatedAt() string {
	if n.LastUpdated != "" {
		return n.LastUpdated
	}
	return n.Timestamp
}
