package transfer

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/store"
)

// ClipHTML converts an HTML fragment (a copied article, a saved page)
// into a new note whose content is Markdown. The note is created but
// not yet saved; the caller runs it through the usual save path.
func ClipHTML(title string, html []byte) (*note.Note, error) {
	conv := md.NewConverter("", true, nil)
	content, err := conv.ConvertString(string(html))
	if err != nil {
		return nil, fmt.Errorf("converting clipped HTML: %w", err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("clipped HTML produced no content")
	}
	return note.Create(title, content), nil
}

// Clip converts an HTML fragment and stores the resulting note.
func Clip(db *store.DB, st store.Store, title string, html []byte) (*note.Note, error) {
	n, err := ClipHTML(title, html)
	if err != nil {
		return nil, err
	}
	if err := n.PrepareForSave(n.Title, n.Content, false); err != nil {
		return nil, err
	}
	db.Upsert(n)
	if err := st.Save(db); err != nil {
		db.Delete(n.ID)
		return nil, fmt.Errorf("saving clipped note: %w", err)
	}
	return n, nil
}
