package tui

import "github.com/charmbracelet/lipgloss"

// Palette is one of the named theme presets. The hex values follow the
// classic DriftNotes themes.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Dim       lipgloss.Color
}

var Palettes = map[string]Palette{
	"nebula": {
		Primary:   lipgloss.Color("#9f7aea"),
		Secondary: lipgloss.Color("#ed64a6"),
		Accent:    lipgloss.Color("#4fd1c7"),
		Dim:       lipgloss.Color("#4a4a6a"),
	},
	"ocean": {
		Primary:   lipgloss.Color("#4fd1c7"),
		Secondary: lipgloss.Color("#38b2ac"),
		Accent:    lipgloss.Color("#63b3ed"),
		Dim:       lipgloss.Color("#2a4a5a"),
	},
	"forest": {
		Primary:   lipgloss.Color("#48bb78"),
		Secondary: lipgloss.Color("#38a169"),
		Accent:    lipgloss.Color("#ecc94b"),
		Dim:       lipgloss.Color("#2a4a3a"),
	},
	"classic": {
		Primary:   lipgloss.Color("#e2e8f0"),
		Secondary: lipgloss.Color("#cbd5e0"),
		Accent:    lipgloss.Color("#a0aec0"),
		Dim:       lipgloss.Color("#4a4a4a"),
	},
}

// PaletteFor returns the palette for a theme name, falling back to
// nebula for unknown names so an edited settings file cannot break the
// display.
func PaletteFor(name string) Palette {
	if p, ok := Palettes[name]; ok {
		return p
	}
	return Palettes["nebula"]
}

// Styles are the lipgloss styles derived from one palette.
type Styles struct {
	Header     lipgloss.Style
	Card       lipgloss.Style
	PinnedCard lipgloss.Style
	NoteTitle  lipgloss.Style
	Preview    lipgloss.Style
	Meta       lipgloss.Style
	Tag        lipgloss.Style
	Stats      lipgloss.Style
	Input      lipgloss.Style
	Suggestion lipgloss.Style
	Error      lipgloss.Style
	Status     lipgloss.Style
	Help       lipgloss.Style
	Quote      lipgloss.Style
}

func NewStyles(p Palette) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(0, 1),
		Card:       card,
		PinnedCard: card.BorderForeground(p.Accent),
		NoteTitle: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),
		Preview: lipgloss.NewStyle().
			Foreground(p.Primary),
		Meta: lipgloss.NewStyle().
			Foreground(p.Accent).
			Faint(true),
		Tag: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Padding(0, 1),
		Stats: lipgloss.NewStyle().
			Foreground(p.Primary).
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Dim).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		Suggestion: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Accent).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(p.Dim),
		Quote: lipgloss.NewStyle().
			Foreground(p.Dim).
			Italic(true),
	}
}

const Banner = `
  ██████╗ ██████╗ ██╗███████╗████████╗
  ██╔══██╗██╔══██╗██║██╔════╝╚══██╔══╝
  ██║  ██║██████╔╝██║█████╗     ██║
  ██║  ██║██╔══██╗██║██╔══╝     ██║
  ██████╔╝██║  ██║██║██║        ██║
  ╚═════╝ ╚═╝  ╚═╝╚═╝╚═╝        ╚═╝  notes
`
