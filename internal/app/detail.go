// internal/app/detail.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/cards"
	"github.com/llehouerou/affirm/internal/ui/render"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// DetailState is a playlist's page: description and affirmation list.
type DetailState struct {
	Playlist catalog.Playlist
	Cursor   int

	description string // rendered markdown
	descWidth   int
}

// Layout re-renders the description for width. Rendering is skipped when
// the width did not change.
func (d *DetailState) Layout(width int) {
	wrap := max(min(width-4, 80), 20)
	if d.descWidth == wrap || d.Playlist.ID == "" {
		return
	}
	d.descWidth = wrap
	d.description = renderMarkdown(d.Playlist.Description, wrap)
}

// renderMarkdown renders playlist descriptions, which may use markdown.
// Plain wrapping is used when glamour fails.
func renderMarkdown(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if out, err := r.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	return strings.Join(render.Wrap(md, width), "\n")
}

func (m *Model) openDetail(p catalog.Playlist) {
	if m.Screen == ScreenPlayer {
		m.prevScreen = ScreenDetail
	} else {
		m.Screen = ScreenDetail
	}
	m.Detail = DetailState{Playlist: p}
	m.Detail.Layout(m.Width)
}

func (m *Model) handleDetailAction(a keymap.Action) handler.Result {
	d := &m.Detail
	n := len(d.Playlist.Affirmations)
	switch a {
	case keymap.ActionMoveUp:
		d.Cursor = max(d.Cursor-1, 0)
	case keymap.ActionMoveDown:
		d.Cursor = max(min(d.Cursor+1, n-1), 0)
	case keymap.ActionSelect:
		return handler.Handled(m.openPlayer(d.Playlist, 0))
	case keymap.ActionPlayFrom:
		return handler.Handled(m.openPlayer(d.Playlist, d.Cursor))
	case keymap.ActionToggleFavorite:
		return handler.Handled(ToggleFavoriteCmd(m.Catalog, d.Playlist.ID))
	case keymap.ActionBack:
		m.Screen = ScreenBrowse
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handlePlaylistLoaded(msg PlaylistLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.showError(errmsg.OpPlaylistLoad, msg.Err)
	}
	if msg.Play {
		return m.openPlayer(msg.Playlist, msg.Start)
	}
	m.openDetail(msg.Playlist)
	return nil
}

func (m Model) renderDetail(width, height int) string {
	s := styles.T().S()
	p := m.Detail.Playlist

	title := styles.Brand(p.Title)
	if p.Favorite {
		title += " " + s.Favorite.Render(icons.Favorite())
	}
	head := []string{title, s.Subtle.Render(cards.Meta(p))}
	if m.Detail.description != "" {
		head = append(head, "")
		head = append(head, strings.Split(m.Detail.description, "\n")...)
	}
	head = append(head, s.Subtle.Render(render.Separator(width)))

	listHeight := max(height-len(head), 1)
	if len(p.Affirmations) == 0 {
		return strings.Join(append(head, s.Muted.Render("This playlist has no affirmations yet.")), "\n")
	}
	rows := make([]string, len(p.Affirmations))
	for i, a := range p.Affirmations {
		rows[i] = cards.Affirmation(i+1, a, width, i == m.Detail.Cursor)
	}
	return strings.Join(append(head, scrollWindow(rows, m.Detail.Cursor, 1, listHeight)...), "\n")
}
