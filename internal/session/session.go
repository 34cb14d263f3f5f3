// Package session holds the mutable per-session state that would
// otherwise be scattered globals: the active view, the note being
// edited, cached suggestions, and the vault gate. A Session is created
// when the shell starts and discarded when it exits; the core packages
// never touch it.
package session

import (
	"github.com/google/uuid"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/suggest"
	"github.com/jeanpaul/driftnotes/internal/vault"
)

// View names the screen the shell is showing.
type View string

const (
	ViewLogin     View = "login"
	ViewVault     View = "vault"
	ViewDashboard View = "dashboard"
	ViewEdit      View = "edit"
	ViewSettings  View = "settings"
)

type Session struct {
	ID            string
	View          View
	Current       *note.Note
	Gate          *vault.Gate
	LoginAttempts int
	Authenticated bool

	suggestions map[suggest.Kind]string
	insights    string
}

// New creates the session context for one run of the shell.
func New(gate *vault.Gate) *Session {
	return &Session{
		ID:          uuid.New().String(),
		View:        ViewDashboard,
		Gate:        gate,
		suggestions: map[suggest.Kind]string{},
	}
}

// CacheSuggestion stores the latest suggestion of a kind for display.
func (s *Session) CacheSuggestion(kind suggest.Kind, text string) {
	s.suggestions[kind] = text
}

// Suggestion returns the cached suggestion for a kind, if any.
func (s *Session) Suggestion(kind suggest.Kind) (string, bool) {
	text, ok := s.suggestions[kind]
	return text, ok
}

// ClearSuggestion drops one cached suggestion.
func (s *Session) ClearSuggestion(kind suggest.Kind) {
	delete(s.suggestions, kind)
}

// Suggestions returns all cached suggestions in kind display order.
func (s *Session) Suggestions() []suggest.Kind {
	kinds := []suggest.Kind{}
	for _, k := range suggest.Kinds {
		if _, ok := s.suggestions[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// SetInsights caches the Smart Insights text.
func (s *Session) SetInsights(text string) { s.insights = text }

// Insights returns the cached Smart Insights text.
func (s *Session) Insights() string { return s.insights }
