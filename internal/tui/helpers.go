package tui

import (
	"time"
)

// quotes rotate by day of month on the dashboard.
var quotes = []string{
	"Write what should not be forgotten. - Isabel Allende",
	"The secret to getting ahead is getting started. - Mark Twain",
	"Ideas are like rabbits. You get a couple and learn how to handle them, and pretty soon you have a dozen. - John Steinbeck",
	"Writing is thinking on paper. - William Zinsser",
	"In the dark, all thoughts glow. - DriftNotes",
}

func dailyQuote(now time.Time) string {
	return quotes[now.Day()%len(quotes)]
}

// truncate cuts s to at most n runes, appending an ellipsis when it
// was longer.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
