// internal/app/commands.go
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/notify"
	"github.com/llehouerou/affirm/internal/playback"
)

const (
	toastDuration = 3 * time.Second
	recentLimit   = 8
)

// LoadBrowseCmd loads every list the browse tabs show.
func LoadBrowseCmd(c catalog.Interface) tea.Cmd {
	if c == nil {
		return nil
	}
	return func() tea.Msg {
		data, err := loadBrowse(c)
		return BrowseLoadedMsg{Data: data, Err: err}
	}
}

func loadBrowse(c catalog.Interface) (BrowseData, error) {
	var (
		d   BrowseData
		err error
	)
	if d.Recent, err = c.RecentSessions(recentLimit); err != nil {
		return d, err
	}
	if d.Featured, err = c.PlaylistsBySection(catalog.SectionFeatured); err != nil {
		return d, err
	}
	d.Sections = make(map[catalog.Section][]catalog.Playlist, len(catalog.HomeSections))
	for _, section := range catalog.HomeSections {
		if d.Sections[section], err = c.PlaylistsBySection(section); err != nil {
			return d, err
		}
	}
	if d.Categories, err = c.Categories(); err != nil {
		return d, err
	}
	if d.Playlists, err = c.Playlists(); err != nil {
		return d, err
	}
	if d.Favorites, err = c.Favorites(); err != nil {
		return d, err
	}
	if d.Hits, err = c.Affirmations(); err != nil {
		return d, err
	}
	return d, nil
}

// LoadCategoryCmd loads the playlists of a category.
func LoadCategoryCmd(c catalog.Interface, cat catalog.Category) tea.Cmd {
	return func() tea.Msg {
		playlists, err := c.PlaylistsByCategory(cat.ID)
		return CategoryLoadedMsg{Category: cat, Playlists: playlists, Err: err}
	}
}

// LoadPlaylistCmd loads a playlist for its detail page.
func LoadPlaylistCmd(c catalog.Interface, id string) tea.Cmd {
	return func() tea.Msg {
		p, err := c.Playlist(id)
		return PlaylistLoadedMsg{Playlist: p, Err: err}
	}
}

// PlayPlaylistCmd loads a playlist and opens the player at start.
func PlayPlaylistCmd(c catalog.Interface, id string, start int) tea.Cmd {
	return func() tea.Msg {
		p, err := c.Playlist(id)
		return PlaylistLoadedMsg{Playlist: p, Play: true, Start: start, Err: err}
	}
}

// ToggleFavoriteCmd flips a playlist's favorite flag.
func ToggleFavoriteCmd(c catalog.Interface, id string) tea.Cmd {
	return func() tea.Msg {
		fav, err := c.ToggleFavorite(context.Background(), id)
		return FavoriteToggledMsg{PlaylistID: id, Favorite: fav, Err: err}
	}
}

// RecordSessionCmd adds a playlist to the recent sessions.
func RecordSessionCmd(c catalog.Interface, id string) tea.Cmd {
	return func() tea.Msg {
		s, err := c.RecordSession(context.Background(), id)
		return SessionRecordedMsg{Session: s, Err: err}
	}
}

// ClearHistoryCmd forgets the recent sessions. Favorites are kept.
func ClearHistoryCmd(c catalog.Interface) tea.Cmd {
	return func() tea.Msg {
		return HistoryClearedMsg{Err: c.ClearHistory(context.Background())}
	}
}

// ImportCmd replaces the catalog content with a reloaded pack.
func ImportCmd(c catalog.Interface, pack catalog.Pack) tea.Cmd {
	return func() tea.Msg {
		return ContentImportedMsg{Err: c.Import(context.Background(), pack)}
	}
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchReloads waits for the next content pack reload.
func WatchReloads(ch <-chan catalog.Reload) tea.Cmd {
	return waitForChannel(ch, func(r catalog.Reload, ok bool) tea.Msg {
		if !ok {
			return ReloadsClosedMsg{}
		}
		return ContentReloadedMsg{Reload: r}
	})
}

// WatchSessionEvents waits for the next event of a player session and
// converts it to a tea.Msg.
func WatchSessionEvents(id string, sub *playback.Subscription) tea.Cmd {
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.IndexChanged:
			return SessionIndexMsg{SessionID: id, Change: e}
		case e := <-sub.StateChanged:
			return SessionStateMsg{SessionID: id, Change: e}
		case e := <-sub.Finished:
			return SessionFinishedMsg{SessionID: id, Finished: e}
		case e := <-sub.Error:
			return SessionErrorMsg{SessionID: id, Event: e}
		case <-sub.Done:
			return SessionClosedMsg{SessionID: id}
		}
	}
}

// NotifyCmd sends a desktop notification.
func NotifyCmd(n notify.Notifier, notification notify.Notification) tea.Cmd {
	return func() tea.Msg {
		_, err := n.Notify(notification)
		return NotifiedMsg{Err: err}
	}
}

// toastExpireCmd hides a toast after toastDuration.
func toastExpireCmd(gen int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Gen: gen}
	})
}
