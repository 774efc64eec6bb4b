// internal/app/favorites.go
package app

import (
	"github.com/charmbracelet/bubbles/list"

	"github.com/llehouerou/affirm/internal/app/handler"
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/icons"
	"github.com/llehouerou/affirm/internal/keymap"
	"github.com/llehouerou/affirm/internal/ui/cards"
	"github.com/llehouerou/affirm/internal/ui/styles"
)

// favoriteItem implements list.DefaultItem for a favorite playlist.
type favoriteItem struct {
	playlist catalog.Playlist
}

func (f favoriteItem) FilterValue() string { return f.playlist.Title }
func (f favoriteItem) Title() string       { return icons.Favorite() + " " + f.playlist.Title }
func (f favoriteItem) Description() string { return cards.Meta(f.playlist) }

// FavoritesState is the Favorites tab, a bubbles list of playlists.
type FavoritesState struct {
	List   list.Model
	Loaded bool
}

func newFavoritesState() FavoritesState {
	t := styles.T()
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(t.FgBase).
		BorderLeftForeground(t.Heart)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(t.FgMuted).
		BorderLeftForeground(t.Heart)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(t.FgMuted)
	delegate.Styles.NormalDesc = delegate.Styles.NormalDesc.Foreground(t.FgSubtle)

	l := list.New(nil, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = l.Styles.PaginationStyle.PaddingLeft(2)
	return FavoritesState{List: l}
}

// SetPlaylists replaces the list content.
func (f *FavoritesState) SetPlaylists(playlists []catalog.Playlist) {
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = favoriteItem{playlist: p}
	}
	f.List.SetItems(items)
	f.Loaded = true
}

// SetSize sets the list area.
func (f *FavoritesState) SetSize(width, height int) {
	f.List.SetSize(width, height)
}

// Selected returns the highlighted playlist.
func (f FavoritesState) Selected() (catalog.Playlist, bool) {
	item, ok := f.List.SelectedItem().(favoriteItem)
	if !ok {
		return catalog.Playlist{}, false
	}
	return item.playlist, true
}

func (m *Model) handleFavoritesAction(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionMoveUp:
		m.Favorites.List.CursorUp()
	case keymap.ActionMoveDown:
		m.Favorites.List.CursorDown()
	case keymap.ActionMoveLeft:
		m.Favorites.List.Paginator.PrevPage()
	case keymap.ActionMoveRight:
		m.Favorites.List.Paginator.NextPage()
	case keymap.ActionSelect:
		p, ok := m.Favorites.Selected()
		if !ok {
			return handler.HandledNoCmd
		}
		return handler.Handled(LoadPlaylistCmd(m.Catalog, p.ID))
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m Model) renderFavorites() string {
	s := styles.T().S()
	switch {
	case !m.Favorites.Loaded:
		return s.Muted.Render("Loading...")
	case len(m.Favorites.List.Items()) == 0:
		return s.Muted.Render("No favorites yet. Press F on a playlist to keep it here.")
	}
	return m.Favorites.List.View()
}
