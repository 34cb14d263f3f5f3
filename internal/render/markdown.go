// Package render turns note content (Markdown) into a terminal
// display form. Rendering is a pure collaborator: a failure falls back
// to the raw text and never affects stored data.
package render

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

type Renderer struct {
	tr *glamour.TermRenderer
}

// New builds a terminal Markdown renderer wrapped to the given width.
func New(width int) (*Renderer, error) {
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render returns the styled form of the Markdown text, or the raw text
// if rendering fails.
func (r *Renderer) Render(markdown string) string {
	if r == nil || r.tr == nil {
		return markdown
	}
	out, err := r.tr.Render(markdown)
	if err != nil {
		return markdown
	}
	return strings.TrimRight(out, "\n")
}
