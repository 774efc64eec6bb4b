// internal/app/home.go
package app

import (
	"strings"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/cards"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// homeRow is one horizontal strip of the home screen: either the recent
// sessions or a playlist section.
type homeRow struct {
	Title     string
	Sessions  []catalog.Session
	Playlists []catalog.Playlist
}

func (r homeRow) Len() int {
	if r.Sessions != nil {
		return len(r.Sessions)
	}
	return len(r.Playlists)
}

// playlistID returns the playlist behind card i.
func (r homeRow) playlistID(i int) string {
	if r.Sessions != nil {
		return r.Sessions[i].PlaylistID
	}
	return r.Playlists[i].ID
}

func (r homeRow) render(selected int) []string {
	out := make([]string, 0, r.Len())
	for i := range r.Len() {
		if r.Sessions != nil {
			out = append(out, cards.Session(r.Sessions[i], i == selected))
			continue
		}
		out = append(out, cards.Playlist(r.Playlists[i], i == selected))
	}
	return out
}

// HomeState is the Home tab: rows of cards with a (row, column) cursor.
type HomeState struct {
	Rows   []homeRow
	Row    int
	Col    int
	Loaded bool
}

func buildHomeRows(d BrowseData) []homeRow {
	var rows []homeRow
	if len(d.Recent) > 0 {
		rows = append(rows, homeRow{Title: "Last sessions", Sessions: d.Recent})
	}
	if len(d.Featured) > 0 {
		rows = append(rows, homeRow{Title: catalog.SectionFeatured.Title(), Playlists: d.Featured})
	}
	for _, section := range catalog.HomeSections {
		if pls := d.Sections[section]; len(pls) > 0 {
			rows = append(rows, homeRow{Title: section.Title(), Playlists: pls})
		}
	}
	return rows
}

// SetRows replaces the rows, keeping the cursor in range.
func (h *HomeState) SetRows(rows []homeRow) {
	h.Rows = rows
	h.Loaded = true
	h.Move(0, 0)
}

// Move shifts the cursor. Changing row keeps the column when it fits.
func (h *HomeState) Move(dRow, dCol int) {
	if len(h.Rows) == 0 {
		h.Row, h.Col = 0, 0
		return
	}
	h.Row = max(0, min(h.Row+dRow, len(h.Rows)-1))
	n := h.Rows[h.Row].Len()
	h.Col = max(0, min(h.Col+dCol, n-1))
}

// Selected returns the playlist id under the cursor.
func (h HomeState) Selected() (string, bool) {
	if h.Row >= len(h.Rows) || h.Col >= h.Rows[h.Row].Len() {
		return "", false
	}
	return h.Rows[h.Row].playlistID(h.Col), true
}

func (m *Model) handleHomeAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionMoveUp:
		m.Home.Move(-1, 0)
	case keymap.ActionMoveDown:
		m.Home.Move(1, 0)
	case keymap.ActionMoveLeft:
		m.Home.Move(0, -1)
	case keymap.ActionMoveRight:
		m.Home.Move(0, 1)
	case keymap.ActionSelect:
		id, ok := m.Home.Selected()
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(LoadPlaylistCmd(m.Catalog, id))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m Model) renderHome(width, height int) string {
	s := styles.T().S()
	if !m.Home.Loaded {
		return s.Muted.Render("Loading...")
	}
	if len(m.Home.Rows) == 0 {
		return s.Muted.Render("Nothing to show yet.")
	}

	var lines []string
	focusTop, focusSpan := 0, 0
	for i, row := range m.Home.Rows {
		selected := -1
		if i == m.Home.Row {
			selected = m.Home.Col
			focusTop = len(lines)
		}
		heading := s.Heading.Render(row.Title)
		if i == m.Home.Row {
			heading = s.Heading.Render(styles.Brand(row.Title))
		}
		strip, _ := cards.Row(row.render(selected), width, max(selected, 0))
		block := strings.Split(heading+"\n"+strip, "\n")
		if i == m.Home.Row {
			focusSpan = len(block)
		}
		lines = append(lines, block...)
		lines = append(lines, "")
	}
	return strings.Join(scrollWindow(lines, focusTop, focusSpan, height), "\n")
}
