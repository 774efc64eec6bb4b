// internal/app/update.go
package app

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/errmsg"
	"github.com/llehouerou/affirm/internal/search"
	"github.com/llehouerou/affirm/internal/ui/confirm"
	"github.com/llehouerou/affirm/internal/ui/overlay"
	"github.com/llehouerou/affirm/internal/ui/pager"
	"github.com/llehouerou/affirm/internal/ui/tabbar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.Screen == ScreenPlayer {
			return m, m.handlePagerMsg(msg)
		}
		return m, nil

	case BrowseLoadedMsg:
		return m, m.handleBrowseLoaded(msg)

	case CategoryLoadedMsg:
		return m, m.handleCategoryLoaded(msg)

	case PlaylistLoadedMsg:
		return m, m.handlePlaylistLoaded(msg)

	case FavoriteToggledMsg:
		return m, m.handleFavoriteToggled(msg)

	case SessionRecordedMsg:
		if msg.Err != nil {
			// History is best effort; playback already started.
			m.Log.Warn().Err(msg.Err).Msg("record session")
			return m, nil
		}
		return m, LoadBrowseCmd(m.Catalog)

	case confirm.ResultMsg:
		if msg.Confirmed && msg.Context == confirmClearHistory {
			return m, ClearHistoryCmd(m.Catalog)
		}
		return m, nil

	case HistoryClearedMsg:
		if msg.Err != nil {
			return m, m.showError(errmsg.OpHistoryClear, msg.Err)
		}
		m.Log.Info().Msg("history cleared")
		return m, tea.Batch(
			LoadBrowseCmd(m.Catalog),
			m.showToast("History cleared", overlay.Info),
		)

	case ContentReloadedMsg:
		var cmd tea.Cmd
		if msg.Reload.Err != nil {
			cmd = m.showErrorAbout(errmsg.OpContentReload, filepath.Base(msg.Reload.Path), msg.Reload.Err)
		} else {
			m.Log.Info().Str("path", msg.Reload.Path).Msg("content pack changed")
			cmd = ImportCmd(m.Catalog, msg.Reload.Pack)
		}
		return m, tea.Batch(cmd, WatchReloads(m.Reloads))

	case ContentImportedMsg:
		if msg.Err != nil {
			return m, m.showError(errmsg.OpCatalogImport, msg.Err)
		}
		return m, tea.Batch(
			LoadBrowseCmd(m.Catalog),
			m.showToast("Content updated", overlay.Info),
		)

	case ReloadsClosedMsg:
		m.Reloads = nil
		return m, nil

	case SessionIndexMsg:
		return m, m.handleSessionMsg(msg.SessionID, msg)
	case SessionStateMsg:
		return m, m.handleSessionMsg(msg.SessionID, msg)
	case SessionFinishedMsg:
		return m, m.handleSessionMsg(msg.SessionID, msg)
	case SessionErrorMsg:
		return m, m.handleSessionMsg(msg.SessionID, msg)
	case SessionClosedMsg:
		return m, m.handleSessionMsg(msg.SessionID, msg)

	case pager.FrameMsg, pager.SeekedMsg, pager.VisibleMsg:
		return m, m.handlePagerMsg(msg)

	case search.ResultMsg:
		return m, m.handleSearchResult(msg)

	case NotifiedMsg:
		if msg.Err != nil {
			m.Log.Warn().Err(msg.Err).Msg("desktop notification")
		}
		return m, nil

	case ToastExpiredMsg:
		m.handleToastExpired(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleBrowseLoaded(msg BrowseLoadedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.showError(errmsg.OpCatalogLoad, msg.Err)
	}
	d := msg.Data
	m.Home.SetRows(buildHomeRows(d))
	m.Explore.Categories = d.Categories
	m.Explore.Playlists = d.Playlists
	m.Explore.clamp()
	m.Favorites.SetPlaylists(d.Favorites)
	m.Search.SetItems(search.Items(d.Playlists, d.Hits))
	return nil
}

func (m *Model) handleFavoriteToggled(msg FavoriteToggledMsg) tea.Cmd {
	if msg.Err != nil {
		return m.showError(errmsg.OpFavoriteToggle, msg.Err)
	}
	title := ""
	if m.Detail.Playlist.ID == msg.PlaylistID {
		m.Detail.Playlist.Favorite = msg.Favorite
		title = m.Detail.Playlist.Title
	}
	if m.Player.Playlist.ID == msg.PlaylistID {
		m.Player.Playlist.Favorite = msg.Favorite
		title = m.Player.Playlist.Title
	}
	text := "Removed from favorites"
	if msg.Favorite {
		text = "Added to favorites"
	}
	if title != "" {
		text += ": " + title
	}
	return tea.Batch(m.showToast(text, overlay.Info), LoadBrowseCmd(m.Catalog))
}

func (m *Model) handleSearchResult(msg search.ResultMsg) tea.Cmd {
	if msg.Canceled {
		return m.switchTab(tabbar.Home)
	}
	switch item := msg.Item.(type) {
	case search.PlaylistItem:
		return LoadPlaylistCmd(m.Catalog, item.ID)
	case search.AffirmationItem:
		return PlayPlaylistCmd(m.Catalog, item.PlaylistID, item.Index)
	}
	return nil
}
