// Package cards renders the browse screens' building blocks: playlist cards,
// category tiles, recent-session cards and affirmation rows.
package cards

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// Card dimensions including borders.
const (
	PlaylistWidth  = 28
	PlaylistHeight = 6
	TileWidth      = 22
	TileHeight     = 5
	SessionWidth   = 24
	SessionHeight  = 4
)

// now is replaced in tests.
var now = time.Now

// Playlist renders a playlist card: title, description, then a meta line
// with the affirmation count and duration.
func Playlist(p catalog.Playlist, selected bool) string {
	inner := PlaylistWidth - 4
	s := styles.T().S()

	title := render.TruncateEllipsis(render.Sanitize(p.Title), inner)
	if p.Favorite {
		heart := icons.Favorite()
		title = render.TruncateEllipsis(render.Sanitize(p.Title), inner-lipgloss.Width(heart)-1)
		title = render.Row(title, s.Favorite.Render(heart), inner)
	}
	titleLine := s.Title.Render(title)
	if selected {
		titleLine = styles.Brand(title)
	}

	desc := render.Wrap(p.Description, inner)
	if len(desc) > 2 {
		desc = desc[:2]
		desc[1] = render.TruncateEllipsis(desc[1]+" …", inner)
	}
	for len(desc) < 2 {
		desc = append(desc, "")
	}

	lines := []string{
		titleLine,
		s.Muted.Render(desc[0]),
		s.Muted.Render(desc[1]),
		s.Subtle.Render(render.TruncateEllipsis(Meta(p), inner)),
	}
	return styles.CardStyle(selected).Width(PlaylistWidth - 2).Render(strings.Join(lines, "\n"))
}

// Meta is the "N affirmations · 10 min" line.
func Meta(p catalog.Playlist) string {
	parts := []string{english.Plural(p.Count, "affirmation", "")}
	if p.Duration != "" {
		parts = append(parts, p.Duration)
	}
	return strings.Join(parts, " · ")
}

// Category renders an explore grid tile tinted with the category color.
func Category(c catalog.Category, selected bool) string {
	inner := TileWidth - 4
	s := styles.T().S()
	name := c.Title
	if c.Emoji != "" && icons.Emoji() {
		name = c.Emoji + " " + name
	}
	lines := []string{
		s.Title.Render(render.TruncateEllipsis(render.Sanitize(name), inner)),
		"",
		s.Muted.Render(english.Plural(c.Count, "playlist", "")),
	}
	return styles.TintedCardStyle(c.Color, selected).Width(TileWidth - 2).Render(strings.Join(lines, "\n"))
}

// Session renders a "Last sessions" card.
func Session(sess catalog.Session, selected bool) string {
	inner := SessionWidth - 4
	s := styles.T().S()
	title := render.TruncateEllipsis(render.Sanitize(sess.Title), inner)
	lines := []string{
		s.Title.Render(title),
		s.Subtle.Render(render.TruncateEllipsis(Opened(sess.OpenedAt), inner)),
	}
	return styles.CardStyle(selected).Width(SessionWidth - 2).Render(strings.Join(lines, "\n"))
}

// Opened describes when a session was opened, relative to now.
func Opened(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.RelTime(t, now(), "ago", "from now")
}

// Affirmation renders one numbered row of a playlist's affirmation list.
func Affirmation(n int, a catalog.Affirmation, width int, selected bool) string {
	s := styles.T().S()
	num := s.Subtle.Render(render.Pad(humanize.Comma(int64(n)), 3))
	right := ""
	if a.Duration != "" {
		right = s.Subtle.Render(a.Duration)
	}
	textWidth := max(width-4-lipgloss.Width(right)-1, 5)
	text := render.TruncateEllipsis(render.Sanitize(a.Text), textWidth)
	row := render.Row(num+" "+text, right, width)
	if selected {
		return s.Cursor.Render(render.Pad(row, width))
	}
	return row
}

// Row lays out rendered cards side by side, keeping as many as fit in width
// starting so that the selected card is visible. It returns the row and the
// index of the first card shown.
func Row(rendered []string, width, selected int) (string, int) {
	if len(rendered) == 0 || width <= 0 {
		return "", 0
	}
	cardWidth := lipgloss.Width(rendered[0]) + 1
	fit := max(width/cardWidth, 1)
	first := 0
	if selected >= fit {
		first = selected - fit + 1
	}
	last := min(first+fit, len(rendered))

	shown := make([]string, 0, (last-first)*2)
	for i := first; i < last; i++ {
		shown = append(shown, rendered[i])
		if i < last-1 {
			shown = append(shown, " ")
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, shown...), first
}

// Grid lays out cards in rows of cols.
func Grid(rendered []string, cols int) string {
	if cols <= 0 {
		cols = 1
	}
	var rows []string
	for i := 0; i < len(rendered); i += cols {
		end := min(i+cols, len(rendered))
		cells := make([]string, 0, (end-i)*2)
		for j := i; j < end; j++ {
			cells = append(cells, rendered[j])
			if j < end-1 {
				cells = append(cells, " ")
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
