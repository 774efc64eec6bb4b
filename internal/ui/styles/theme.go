package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Violet - focused items, active tab, play button
	Secondary lipgloss.Color // Indigo - gradient end
	Accent    lipgloss.Color // Sky blue - position indicator

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase    lipgloss.Color // Screen background
	BgSurface lipgloss.Color // Cards
	BgCursor  lipgloss.Color // Selected card

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Heart   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style // Section headings on the home screen
	Active   lipgloss.Style // Current item, playing state
	Cursor   lipgloss.Style
	Pill     lipgloss.Style // Inactive filter tab
	PillOn   lipgloss.Style // Active filter tab
	Favorite lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7C3AED"),
	Secondary: lipgloss.Color("#6366F1"),
	Accent:    lipgloss.Color("#00BFFF"),

	FgBase:   lipgloss.Color("#ffffff"),
	FgMuted:  lipgloss.Color("#9ca3af"),
	FgSubtle: lipgloss.Color("#4b5563"),

	BgBase:    lipgloss.Color("#070a14"),
	BgSurface: lipgloss.Color("#111827"),
	BgCursor:  lipgloss.Color("#1F2937"),

	Border:      lipgloss.Color("#374151"),
	BorderFocus: lipgloss.Color("#7C3AED"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
	Heart:   lipgloss.Color("#F472B6"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: base.Bold(true).MarginBottom(1),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Pill: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Padding(0, 2),
		PillOn: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),
		Favorite: lipgloss.NewStyle().Foreground(t.Heart),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}
