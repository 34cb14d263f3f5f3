// Package suggest calls an external text-completion service for
// writing assistance. The core never inspects what comes back; a
// failure simply means no suggestion is available, and nothing here
// retries beyond the optional retry wrapper.
package suggest

import (
	"context"
	"fmt"

	"github.com/jeanpaul/driftnotes/internal/note"
)

// Kind selects the prompt sent with the note content.
type Kind string

const (
	KindImprove   Kind = "improve"
	KindSummarize Kind = "summarize"
	KindTags      Kind = "tags"
	KindContinue  Kind = "continue"
	KindTitle     Kind = "title"
)

// Kinds lists every suggestion kind in display order.
var Kinds = []Kind{KindImprove, KindSummarize, KindTags, KindContinue, KindTitle}

var prompts = map[Kind]string{
	KindImprove:   "Analyze this note and suggest 3 ways to improve it:\n\n%s",
	KindSummarize: "Create a concise summary of this note:\n\n%s",
	KindTags:      "Suggest 5 relevant hashtags for this note:\n\n%s",
	KindContinue:  "Continue writing this note with 2-3 more sentences:\n\n%s",
	KindTitle:     "Suggest 3 creative titles for this note:\n\n%s",
}

// Prompt builds the full prompt for a kind. Unknown kinds error rather
// than silently sending an empty prompt.
func Prompt(kind Kind, content string) (string, error) {
	tmpl, ok := prompts[kind]
	if !ok {
		return "", fmt.Errorf("unknown suggestion kind %q", kind)
	}
	return fmt.Sprintf(tmpl, content), nil
}

// Provider is the external completion service.
type Provider interface {
	Complete(ctx context.Context, kind Kind, content string) (string, error)
	Name() string
}

const insightSampleSize = 5

// InsightsPrompt builds the Smart Insights prompt over the most recent
// notes: the last five, titles plus a 100-character content sample.
// Returns false when there are no notes to analyze.
func InsightsPrompt(notes []*note.Note) (string, bool) {
	if len(notes) == 0 {
		return "", false
	}
	recent := notes
	if len(recent) > insightSampleSize {
		recent = recent[len(recent)-insightSampleSize:]
	}

	sample := ""
	for _, n := range recent {
		content := n.Content
		if len(content) > 100 {
			content = content[:100] + "..."
		}
		sample += fmt.Sprintf("- %s: %s\n", n.Title, content)
	}

	return fmt.Sprintf(`Analyze these recent notes and provide insights:
%s
Provide:
1. Main themes/topics
2. Writing patterns
3. Productivity suggestions`, sample), true
}
