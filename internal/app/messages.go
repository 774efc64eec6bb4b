// internal/app/messages.go
package app

import (
	"github.com/llehouerou/affirm/internal/catalog"
	"github.com/llehouerou/affirm/internal/playback"
)

// BrowseData is everything the browse tabs show.
type BrowseData struct {
	Recent     []catalog.Session
	Featured   []catalog.Playlist
	Sections   map[catalog.Section][]catalog.Playlist
	Categories []catalog.Category
	Playlists  []catalog.Playlist
	Favorites  []catalog.Playlist
	Hits       []catalog.AffirmationHit
}

// BrowseLoadedMsg carries a fresh load of the browse data.
type BrowseLoadedMsg struct {
	Data BrowseData
	Err  error
}

// CategoryLoadedMsg carries the playlists of one explore category.
type CategoryLoadedMsg struct {
	Category  catalog.Category
	Playlists []catalog.Playlist
	Err       error
}

// PlaylistLoadedMsg carries a playlist with its affirmations. When Play is
// set the player opens at Start instead of the detail page.
type PlaylistLoadedMsg struct {
	Playlist catalog.Playlist
	Play     bool
	Start    int
	Err      error
}

// FavoriteToggledMsg reports a favorite change.
type FavoriteToggledMsg struct {
	PlaylistID string
	Favorite   bool
	Err        error
}

// SessionRecordedMsg reports that an opened playlist was added to the
// recent sessions.
type SessionRecordedMsg struct {
	Session catalog.Session
	Err     error
}

// HistoryClearedMsg reports that recent sessions were forgotten.
type HistoryClearedMsg struct {
	Err error
}

// ContentReloadedMsg is a content pack change seen by the watcher.
type ContentReloadedMsg struct {
	Reload catalog.Reload
}

// ContentImportedMsg reports the outcome of importing a reloaded pack.
type ContentImportedMsg struct {
	Err error
}

// ReloadsClosedMsg is sent once the content watcher stops.
type ReloadsClosedMsg struct{}

// Session event messages. SessionID ties each event to the session that
// emitted it, so events of a replaced session are ignored.
type (
	SessionIndexMsg struct {
		SessionID string
		Change    playback.IndexChange
	}
	SessionStateMsg struct {
		SessionID string
		Change    playback.StateChange
	}
	SessionFinishedMsg struct {
		SessionID string
		Finished  playback.Finished
	}
	SessionErrorMsg struct {
		SessionID string
		Event     playback.ErrorEvent
	}
	SessionClosedMsg struct {
		SessionID string
	}
)

// NotifiedMsg reports a desktop notification attempt.
type NotifiedMsg struct {
	Err error
}

// ToastExpiredMsg hides the toast with the matching generation.
type ToastExpiredMsg struct {
	Gen int
}
