package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jeanpaul/driftnotes/internal/store"
)

func TestPaletteForKnownThemes(t *testing.T) {
	for _, name := range store.Themes {
		_, ok := Palettes[name]
		assert.True(t, ok, "store theme %q must have a palette", name)
	}
}

func TestPaletteForUnknownFallsBack(t *testing.T) {
	assert.Equal(t, Palettes["nebula"], PaletteFor("no-such-theme"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 150))
	long := make([]rune, 200)
	for i := range long {
		long[i] = 'x'
	}
	got := truncate(string(long), 150)
	assert.Len(t, []rune(got), 153)
	assert.Equal(t, "...", got[len(got)-3:])
}

func TestDailyQuoteIsStablePerDay(t *testing.T) {
	day := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, dailyQuote(day), dailyQuote(day.Add(6*time.Hour)))
}
