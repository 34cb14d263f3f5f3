package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeanpaul/driftnotes/internal/store"
	"github.com/jeanpaul/driftnotes/internal/suggest"
	"github.com/jeanpaul/driftnotes/internal/vault"
)

func newSession() *Session {
	settings := store.DefaultSettings()
	return New(vault.NewGate(&settings))
}

func TestNewSession(t *testing.T) {
	s := newSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, ViewDashboard, s.View)
	assert.Zero(t, s.LoginAttempts)
	assert.Nil(t, s.Current)
}

func TestSuggestionCache(t *testing.T) {
	s := newSession()

	_, ok := s.Suggestion(suggest.KindImprove)
	assert.False(t, ok)

	s.CacheSuggestion(suggest.KindTags, "#go #notes")
	s.CacheSuggestion(suggest.KindImprove, "tighten the intro")

	text, ok := s.Suggestion(suggest.KindTags)
	assert.True(t, ok)
	assert.Equal(t, "#go #notes", text)

	assert.Equal(t, []suggest.Kind{suggest.KindImprove, suggest.KindTags}, s.Suggestions(),
		"cached kinds come back in display order")

	s.ClearSuggestion(suggest.KindTags)
	_, ok = s.Suggestion(suggest.KindTags)
	assert.False(t, ok)
}
