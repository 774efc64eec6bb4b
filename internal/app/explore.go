// internal/app/explore.go
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/cards"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// ExploreFilter is the filter tab row of the Explore screen.
type ExploreFilter int

const (
	FilterAll ExploreFilter = iota
	FilterCategories
	FilterPlaylists
)

var exploreFilters = []ExploreFilter{FilterAll, FilterCategories, FilterPlaylists}

func (f ExploreFilter) String() string {
	switch f {
	case FilterCategories:
		return "Categories"
	case FilterPlaylists:
		return "Playlists"
	default:
		return "All"
	}
}

// parseExploreFilter returns the filter labelled name, All when unknown.
func parseExploreFilter(name string) ExploreFilter {
	for _, f := range exploreFilters {
		if f.String() == name {
			return f
		}
	}
	return FilterAll
}

// Next cycles to the following filter.
func (f ExploreFilter) Next() ExploreFilter {
	return exploreFilters[(int(f)+1)%len(exploreFilters)]
}

// exploreEntry is one card of the explore grid.
type exploreEntry struct {
	Category *catalog.Category
	Playlist *catalog.Playlist
}

// ExploreState is the Explore tab. Opening a category drills down to its
// playlists until Back.
type ExploreState struct {
	Filter     ExploreFilter
	Categories []catalog.Category
	Playlists  []catalog.Playlist
	Cursor     int

	Open          *catalog.Category
	OpenPlaylists []catalog.Playlist
	OpenCursor    int
}

func (e ExploreState) entries() []exploreEntry {
	var out []exploreEntry
	if e.Open != nil {
		for i := range e.OpenPlaylists {
			out = append(out, exploreEntry{Playlist: &e.OpenPlaylists[i]})
		}
		return out
	}
	if e.Filter != FilterPlaylists {
		for i := range e.Categories {
			out = append(out, exploreEntry{Category: &e.Categories[i]})
		}
	}
	if e.Filter != FilterCategories {
		for i := range e.Playlists {
			out = append(out, exploreEntry{Playlist: &e.Playlists[i]})
		}
	}
	return out
}

func (e *ExploreState) cursor() *int {
	if e.Open != nil {
		return &e.OpenCursor
	}
	return &e.Cursor
}

// clamp keeps the cursor inside the current entries.
func (e *ExploreState) clamp() {
	c := e.cursor()
	*c = max(0, min(*c, len(e.entries())-1))
}

// columns returns how many cards of the entry's kind fit in width.
func columns(entry exploreEntry, width int) int {
	cardWidth := cards.PlaylistWidth
	if entry.Category != nil {
		cardWidth = cards.TileWidth
	}
	return max(width/(cardWidth+1), 1)
}

// Move steps the cursor. Vertical steps move by a row of the grid the
// cursor is in.
func (e *ExploreState) Move(dx, dy, width int) {
	entries := e.entries()
	if len(entries) == 0 {
		return
	}
	c := e.cursor()
	step := dx
	if dy != 0 {
		step = dy * columns(entries[*c], width)
	}
	*c = max(0, min(*c+step, len(entries)-1))
}

// Selected returns the entry under the cursor.
func (e ExploreState) Selected() (exploreEntry, bool) {
	entries := e.entries()
	c := *e.cursor()
	if c >= len(entries) {
		return exploreEntry{}, false
	}
	return entries[c], true
}

func (m *Model) handleExploreAction(a keymap.Action) handler.Result {
	e := &m.Explore
	switch a {
	case keymap.ActionMoveUp:
		e.Move(0, -1, m.Width)
	case keymap.ActionMoveDown:
		e.Move(0, 1, m.Width)
	case keymap.ActionMoveLeft:
		e.Move(-1, 0, m.Width)
	case keymap.ActionMoveRight:
		e.Move(1, 0, m.Width)
	case keymap.ActionNextFilter:
		if e.Open == nil {
			e.Filter = e.Filter.Next()
			e.Cursor = 0
			m.saveUI()
		}
	case keymap.ActionBack:
		if e.Open == nil {
			return handler.NotHandled
		}
		e.Open = nil
		e.OpenPlaylists = nil
	case keymap.ActionSelect:
		return handler.Handled(m.openExploreEntry())
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) openExploreEntry() tea.Cmd {
	entry, ok := m.Explore.Selected()
	switch {
	case !ok:
		return nil
	case entry.Category != nil:
		return LoadCategoryCmd(m.Catalog, *entry.Category)
	default:
		return LoadPlaylistCmd(m.Catalog, entry.Playlist.ID)
	}
}

func (m *Model) handleCategoryLoaded(msg CategoryLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.showError(errmsg.OpCatalogLoad, msg.Err)
	}
	cat := msg.Category
	m.Explore.Open = &cat
	m.Explore.OpenPlaylists = msg.Playlists
	m.Explore.OpenCursor = 0
	return nil
}

func (m Model) renderExploreFilters() string {
	s := styles.T().S()
	pills := make([]string, 0, len(exploreFilters))
	for _, f := range exploreFilters {
		if f == m.Explore.Filter {
			pills = append(pills, s.PillOn.Render(f.String()))
			continue
		}
		pills = append(pills, s.Pill.Render(f.String()))
	}
	return strings.Join(pills, " ")
}

func (m Model) renderExplore(width, height int) string {
	s := styles.T().S()
	e := m.Explore
	entries := e.entries()
	cursor := *e.cursor()

	var lines []string
	if e.Open != nil {
		lines = append(lines, s.Title.Render(styles.Tint(e.Open.Title, e.Open.Color)), "")
	} else {
		lines = append(lines, m.renderExploreFilters(), "")
	}
	if len(entries) == 0 {
		lines = append(lines, s.Muted.Render("No playlists here yet."))
		return strings.Join(lines, "\n")
	}

	// Entries come grouped: categories first, then playlists.
	focusTop, focusSpan := 0, 0
	group := func(title string, from, to int) {
		if from == to {
			return
		}
		if title != "" {
			lines = append(lines, strings.Split(s.Heading.Render(title), "\n")...)
		}
		cols := columns(entries[from], width)
		for rowStart := from; rowStart < to; rowStart += cols {
			rowEnd := min(rowStart+cols, to)
			rendered := make([]string, 0, rowEnd-rowStart)
			for i := rowStart; i < rowEnd; i++ {
				rendered = append(rendered, renderEntry(entries[i], i == cursor))
			}
			block := strings.Split(cards.Grid(rendered, cols), "\n")
			if cursor >= rowStart && cursor < rowEnd {
				focusTop, focusSpan = len(lines), len(block)
			}
			lines = append(lines, block...)
		}
		lines = append(lines, "")
	}

	split := 0
	for split < len(entries) && entries[split].Category != nil {
		split++
	}
	if e.Open != nil || e.Filter != FilterAll {
		group("", 0, split)
		group("", split, len(entries))
	} else {
		group("Categories", 0, split)
		group("Playlists", split, len(entries))
	}
	return strings.Join(scrollWindow(lines, focusTop, focusSpan, height), "\n")
}

func renderEntry(e exploreEntry, selected bool) string {
	if e.Category != nil {
		return cards.Category(*e.Category, selected)
	}
	return cards.Playlist(*e.Playlist, selected)
}
