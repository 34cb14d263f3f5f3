package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/driftnotes/internal/config"
	"github.com/jeanpaul/driftnotes/internal/note"
	"github.com/jeanpaul/driftnotes/internal/query"
	"github.com/jeanpaul/driftnotes/internal/render"
	"github.com/jeanpaul/driftnotes/internal/session"
	"github.com/jeanpaul/driftnotes/internal/store"
	"github.com/jeanpaul/driftnotes/internal/suggest"
	"github.com/jeanpaul/driftnotes/internal/transfer"
	"github.com/jeanpaul/driftnotes/internal/vault"
)

const previewLength = 150

type suggestionMsg struct {
	kind suggest.Kind
	text string
	err  error
}

type insightsMsg struct {
	text string
	err  error
}

// Model is the root bubbletea model for the DriftNotes shell.
type Model struct {
	cfg      *config.Config
	db       *store.DB
	guard    *vault.Guard
	sess     *session.Session
	provider suggest.Provider
	insights *suggest.GoogleProvider
	renderer *render.Renderer
	styles   Styles

	width  int
	height int

	search    textinput.Model
	titleIn   textinput.Model
	password  textinput.Model
	content   textarea.Model
	tagFilter string
	cursor    int
	pinned    bool

	lockPrompt   bool
	blocked      bool
	showInsights bool
	statusMsg    string
	errMsg       string
}

// New wires the shell over an already loaded store and session.
func New(cfg *config.Config, db *store.DB, st store.Store, sess *session.Session,
	provider suggest.Provider, insights *suggest.GoogleProvider) Model {

	search := textinput.New()
	search.Placeholder = "search notes"
	search.CharLimit = 120

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	content := textarea.New()
	content.Placeholder = "Write in Markdown. #tags are extracted automatically."
	content.SetHeight(14)

	renderer, _ := render.New(60)

	m := Model{
		cfg:      cfg,
		db:       db,
		guard:    vault.NewGuard(sess.Gate, db, st),
		sess:     sess,
		provider: provider,
		insights: insights,
		renderer: renderer,
		styles:   NewStyles(PaletteFor(db.Settings.Theme)),
		search:   search,
		titleIn:  title,
		password: password,
		content:  content,
	}

	switch {
	case cfg.AppPassword != "":
		m.sess.View = session.ViewLogin
		m.password.Focus()
	case !sess.Gate.Unlocked():
		m.sess.View = session.ViewVault
		m.password.Focus()
	default:
		m.sess.View = session.ViewDashboard
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.SetWidth(min(msg.Width-4, 100))
		return m, nil

	case suggestionMsg:
		if msg.err != nil {
			m.errMsg = "AI unavailable: " + msg.err.Error()
		} else {
			m.sess.CacheSuggestion(msg.kind, msg.text)
		}
		return m, nil

	case insightsMsg:
		if msg.err != nil {
			m.errMsg = "AI unavailable: " + msg.err.Error()
		} else {
			m.sess.SetInsights(msg.text)
			m.showInsights = true
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.statusMsg = ""

		switch m.sess.View {
		case session.ViewLogin:
			return m.updateLogin(msg)
		case session.ViewVault:
			return m.updateVault(msg)
		case session.ViewDashboard:
			return m.updateDashboard(msg)
		case session.ViewEdit:
			return m.updateEdit(msg)
		case session.ViewSettings:
			return m.updateSettings(msg)
		}
	}
	return m, nil
}

// --- login (app password, from process config) ---

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.blocked {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.String() == "enter" {
		if m.password.Value() == m.cfg.AppPassword {
			m.sess.Authenticated = true
			m.sess.LoginAttempts = 0
			m.password.SetValue("")
			m.errMsg = ""
			if m.sess.Gate.Unlocked() {
				m.sess.View = session.ViewDashboard
				m.password.Blur()
			} else {
				m.sess.View = session.ViewVault
			}
			return m, nil
		}
		m.sess.LoginAttempts++
		m.password.SetValue("")
		left := m.cfg.MaxLoginAttempts - m.sess.LoginAttempts
		if left <= 0 {
			m.blocked = true
			return m, nil
		}
		m.errMsg = fmt.Sprintf("Incorrect password. You have %d attempt(s) left.", left)
		return m, nil
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

// --- vault unlock ---

func (m Model) updateVault(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		if err := m.sess.Gate.Unlock(m.password.Value()); err != nil {
			m.errMsg = "Invalid password!"
			m.password.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.password.SetValue("")
		m.password.Blur()
		m.sess.View = session.ViewDashboard
		return m, nil
	}

	var cmd tea.Cmd
	m.password, cmd = m.password.Update(msg)
	return m, cmd
}

// --- dashboard ---

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			m.cursor = 0
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	visible := m.visibleNotes()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "t":
		m.cycleTagFilter()
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
		return m, nil
	case "n":
		m.startEditing(note.Create("", ""))
		return m, textinput.Blink
	case "enter", "e":
		if m.cursor < len(visible) {
			m.startEditing(visible[m.cursor])
		}
		return m, textinput.Blink
	case "d":
		if m.cursor < len(visible) {
			if err := m.guard.Delete(visible[m.cursor].ID); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = "Note deleted."
				if m.cursor > 0 {
					m.cursor--
				}
			}
		}
		return m, nil
	case "p":
		if m.cursor < len(visible) {
			n := visible[m.cursor]
			if err := n.PrepareForSave(n.Title, n.Content, !n.Pinned); err != nil {
				m.errMsg = err.Error()
			} else if err := m.guard.Upsert(n); err != nil {
				m.errMsg = err.Error()
			}
		}
		return m, nil
	case "x":
		m.exportNotes()
		return m, nil
	case "i":
		if m.aiReady() && m.insights != nil {
			if m.showInsights {
				m.showInsights = false
				return m, nil
			}
			return m, m.insightsCmd()
		}
		return m, nil
	case "s":
		m.sess.View = session.ViewSettings
		return m, nil
	}
	return m, nil
}

func (m *Model) startEditing(n *note.Note) {
	m.sess.Current = n
	m.titleIn.SetValue(n.Title)
	m.content.SetValue(n.Content)
	m.pinned = n.Pinned
	m.titleIn.Focus()
	m.content.Blur()
	m.errMsg = ""
	m.sess.View = session.ViewEdit
}

func (m *Model) cycleTagFilter() {
	tags := query.AllTags(m.db.Notes)
	if len(tags) == 0 {
		m.tagFilter = ""
		return
	}
	options := append([]string{""}, tags...)
	for i, t := range options {
		if t == m.tagFilter {
			m.tagFilter = options[(i+1)%len(options)]
			return
		}
	}
	m.tagFilter = options[0]
}

func (m *Model) visibleNotes() []*note.Note {
	notes, err := m.guard.Notes()
	if err != nil {
		return nil
	}
	return query.Sort(query.Filter(notes, m.search.Value(), m.tagFilter))
}

func (m *Model) exportNotes() {
	data, err := transfer.Snapshot(m.db).Marshal()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	name := fmt.Sprintf("driftnotes_export_%s.json", time.Now().Format("20060102"))
	if err := os.WriteFile(name, data, 0644); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = fmt.Sprintf("Exported %d notes to %s", len(m.db.Notes), name)
}

// --- editor ---

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sess.Current = nil
		m.sess.View = session.ViewDashboard
		return m, nil
	case "tab":
		if m.titleIn.Focused() {
			m.titleIn.Blur()
			return m, m.content.Focus()
		}
		m.content.Blur()
		m.titleIn.Focus()
		return m, textinput.Blink
	case "ctrl+p":
		m.pinned = !m.pinned
		return m, nil
	case "ctrl+s":
		n := m.sess.Current
		if err := n.PrepareForSave(m.titleIn.Value(), m.content.Value(), m.pinned); err != nil {
			m.errMsg = "Please provide both title and content"
			return m, nil
		}
		if err := m.guard.Upsert(n); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.statusMsg = "Note saved!"
		m.errMsg = ""
		m.sess.Current = nil
		m.sess.View = session.ViewDashboard
		return m, nil
	case "ctrl+d":
		m.exportMarkdown()
		return m, nil
	case "ctrl+e":
		return m.requestSuggestion(suggest.KindImprove)
	case "ctrl+u":
		return m.requestSuggestion(suggest.KindSummarize)
	case "ctrl+r":
		return m.requestSuggestion(suggest.KindTags)
	case "ctrl+g":
		return m.requestSuggestion(suggest.KindContinue)
	case "ctrl+t":
		return m.requestSuggestion(suggest.KindTitle)
	}

	var cmd tea.Cmd
	if m.titleIn.Focused() {
		m.titleIn, cmd = m.titleIn.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) exportMarkdown() {
	title := m.titleIn.Value()
	if title == "" || m.content.Value() == "" {
		m.errMsg = "Please provide both title and content"
		return
	}
	staged := *m.sess.Current
	staged.Title = title
	staged.Content = m.content.Value()
	name := strings.ReplaceAll(title, " ", "_") + ".md"
	if err := os.WriteFile(name, []byte(transfer.NoteMarkdown(&staged)), 0644); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.statusMsg = "Exported " + name
}

func (m Model) requestSuggestion(kind suggest.Kind) (tea.Model, tea.Cmd) {
	if !m.aiReady() || m.content.Value() == "" {
		return m, nil
	}
	return m, m.suggestCmd(kind, m.content.Value())
}

func (m Model) aiReady() bool {
	return m.provider != nil && m.db.Settings.AIEnabled
}

// suggestCmd runs the completion off the update loop. The store is
// never locked during the call; a timeout or cancellation only
// discards the result.
func (m Model) suggestCmd(kind suggest.Kind, content string) tea.Cmd {
	provider := m.provider
	timeout := m.cfg.SuggestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := provider.Complete(ctx, kind, content)
		return suggestionMsg{kind: kind, text: text, err: err}
	}
}

func (m Model) insightsCmd() tea.Cmd {
	prompt, ok := suggest.InsightsPrompt(m.db.Notes)
	if !ok {
		return func() tea.Msg {
			return insightsMsg{text: "Write more notes to get AI insights!"}
		}
	}
	gen := m.insights
	timeout := m.cfg.SuggestTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		text, err := gen.Generate(ctx, prompt)
		return insightsMsg{text: text, err: err}
	}
}

// --- settings ---

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lockPrompt {
		switch msg.String() {
		case "esc":
			m.lockPrompt = false
			m.password.SetValue("")
			return m, nil
		case "enter":
			if m.password.Value() == "" {
				m.errMsg = "Password must not be empty"
				return m, nil
			}
			m.sess.Gate.SetLocked(true, m.password.Value())
			m.password.SetValue("")
			m.password.Blur()
			m.lockPrompt = false
			m.errMsg = ""
			if err := m.guard.SaveSettings(); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = "Vault locked!"
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.password, cmd = m.password.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		m.sess.View = session.ViewDashboard
		return m, nil
	case "left", "h", "right", "l":
		m.cycleTheme(msg.String() == "right" || msg.String() == "l")
		if err := m.guard.SaveSettings(); err != nil {
			m.errMsg = err.Error()
		}
		return m, nil
	case "a":
		m.db.Settings.AIEnabled = !m.db.Settings.AIEnabled
		if err := m.guard.SaveSettings(); err != nil {
			m.errMsg = err.Error()
		}
		return m, nil
	case "v":
		if m.db.Settings.Locked {
			m.sess.Gate.SetLocked(false, "")
			if err := m.guard.SaveSettings(); err != nil {
				m.errMsg = err.Error()
			} else {
				m.statusMsg = "Vault unlocked!"
			}
			return m, nil
		}
		m.lockPrompt = true
		m.password.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) cycleTheme(forward bool) {
	current := 0
	for i, name := range store.Themes {
		if name == m.db.Settings.Theme {
			current = i
			break
		}
	}
	if forward {
		current = (current + 1) % len(store.Themes)
	} else {
		current = (current - 1 + len(store.Themes)) % len(store.Themes)
	}
	m.db.Settings.Theme = store.Themes[current]
	m.styles = NewStyles(PaletteFor(m.db.Settings.Theme))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
