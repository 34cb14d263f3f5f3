package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/query"
	"github.com/jeanpaul/driftnotes/internal/session"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(Banner))
	b.WriteString("\n")

	switch m.sess.View {
	case session.ViewLogin:
		b.WriteString(m.viewLogin())
	case session.ViewVault:
		b.WriteString(m.viewVault())
	case session.ViewDashboard:
		b.WriteString(m.viewDashboard())
	case session.ViewEdit:
		b.WriteString(m.viewEdit())
	case session.ViewSettings:
		b.WriteString(m.viewSettings())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errMsg))
	}
	if m.statusMsg != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.statusMsg))
	}
	return b.String()
}

func (m Model) viewLogin() string {
	if m.blocked {
		return m.styles.Error.Render("Access blocked: too many incorrect password attempts.") +
			"\n" + m.styles.Help.Render("q: quit")
	}
	return m.styles.NoteTitle.Render("DriftNotes Login") + "\n\n" +
		m.styles.Input.Render(m.password.View()) + "\n" +
		m.styles.Help.Render("enter: unlock app")
}

func (m Model) viewVault() string {
	return m.styles.NoteTitle.Render("DriftNotes Vault") + "\n\n" +
		m.styles.Input.Render(m.password.View()) + "\n" +
		m.styles.Help.Render("enter: unlock vault")
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	stats := query.Summarize(m.db.Notes)
	b.WriteString(m.styles.Stats.Render(fmt.Sprintf(
		"%d notes | %d words | %d pinned", stats.TotalNotes, stats.TotalWords, stats.PinnedCount)))
	b.WriteString("\n\n")

	searchLine := m.styles.Input.Render(m.search.View())
	if m.tagFilter != "" {
		searchLine = lipgloss.JoinHorizontal(lipgloss.Center, searchLine, "  ",
			m.styles.Tag.Render("#"+m.tagFilter))
	}
	b.WriteString(searchLine + "\n\n")

	if m.showInsights && m.sess.Insights() != "" {
		b.WriteString(m.styles.Suggestion.Render("Smart Insights\n\n"+m.sess.Insights()) + "\n\n")
	}

	visible := m.visibleNotes()
	if len(visible) == 0 {
		b.WriteString(m.styles.Preview.Render("No notes found. Create your first note!") + "\n")
	}
	for i, n := range visible {
		b.WriteString(m.noteCard(n, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + m.styles.Quote.Render(dailyQuote(time.Now())) + "\n")
	b.WriteString(m.styles.Help.Render(
		"n: new | enter: edit | d: delete | p: pin | /: search | t: tag filter | i: insights | x: export | s: settings | q: quit"))
	return b.String()
}

func (m Model) noteCard(n *note.Note, selected bool) string {
	var b strings.Builder

	title := n.Title
	if n.Pinned {
		title = "📌 " + title
	}
	b.WriteString(m.styles.NoteTitle.Render(title) + "\n")
	b.WriteString(m.styles.Preview.Render(truncate(n.Content, previewLength)) + "\n")

	if len(n.Tags) > 0 {
		tags := []string{}
		for _, t := range n.Tags {
			tags = append(tags, "#"+t)
		}
		b.WriteString(m.styles.Tag.Render(strings.Join(tags, " ")) + "\n")
	}

	updated := n.UpdatedAt()
	if len(updated) > 16 {
		updated = updated[:16]
	}
	b.WriteString(m.styles.Meta.Render(fmt.Sprintf("%d words • %d min read • %s",
		note.WordCount(n.Content), note.ReadingTime(n.Content), updated)))

	card := m.styles.Card
	if n.Pinned {
		card = m.styles.PinnedCard
	}
	if selected {
		card = card.BorderStyle(lipgloss.ThickBorder())
	}
	return card.Render(b.String())
}

func (m Model) viewEdit() string {
	var b strings.Builder

	heading := "New Note"
	if m.sess.Current != nil && m.sess.Current.Saved() {
		heading = "Edit Note"
	}
	b.WriteString(m.styles.NoteTitle.Render(heading) + "\n\n")
	b.WriteString(m.styles.Input.Render(m.titleIn.View()) + "\n\n")

	editor := m.styles.Input.Render(m.content.View())
	preview := m.styles.Card.Render(m.renderer.Render(m.content.Value()))
	if m.width >= 120 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editor, " ", preview))
	} else {
		b.WriteString(editor)
	}
	b.WriteString("\n")

	content := m.content.Value()
	meta := fmt.Sprintf("%d words • %d min read", note.WordCount(content), note.ReadingTime(content))
	if m.pinned {
		meta += " • 📌 pinned"
	}
	if tags := note.ExtractTags(content); len(tags) > 0 {
		meta += " • tags: #" + strings.Join(tags, " #")
	}
	b.WriteString(m.styles.Meta.Render(meta) + "\n")

	for _, kind := range m.sess.Suggestions() {
		text, _ := m.sess.Suggestion(kind)
		b.WriteString(m.styles.Suggestion.Render(
			fmt.Sprintf("%s suggestion\n\n%s", kind, text)) + "\n")
	}

	help := "ctrl+s: save | tab: switch field | ctrl+p: pin | ctrl+d: export .md | esc: back"
	if m.aiReady() {
		help += "\nAI: ctrl+e improve | ctrl+u summarize | ctrl+r tags | ctrl+g continue | ctrl+t titles"
	}
	b.WriteString(m.styles.Help.Render(help))
	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.styles.NoteTitle.Render("Settings") + "\n\n")

	if m.lockPrompt {
		b.WriteString("Set vault password:\n")
		b.WriteString(m.styles.Input.Render(m.password.View()) + "\n")
		b.WriteString(m.styles.Help.Render("enter: lock vault | esc: cancel"))
		return b.String()
	}

	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}
	b.WriteString(fmt.Sprintf("Theme:      %s\n", m.db.Settings.Theme))
	b.WriteString(fmt.Sprintf("AI:         %s\n", onOff(m.db.Settings.AIEnabled)))
	b.WriteString(fmt.Sprintf("Vault lock: %s\n\n", onOff(m.db.Settings.Locked)))
	b.WriteString(m.styles.Help.Render("←/→: theme | a: toggle AI | v: toggle vault lock | esc: back"))
	return b.String()
}
