package catalog

import (
	"context"

	"github.com/llehouerou/affirm/internal/sequence"
)

// Interface defines the catalog contract for dependency injection and testing.
type Interface interface {
	sequence.Provider
	Import(ctx context.Context, pack Pack) error
	Playlists() ([]Playlist, error)
	PlaylistsBySection(section Section) ([]Playlist, error)
	PlaylistsByCategory(categoryID string) ([]Playlist, error)
	Playlist(id string) (Playlist, error)
	Categories() ([]Category, error)
	Category(id string) (Category, error)
	Affirmations() ([]AffirmationHit, error)
	ToggleFavorite(ctx context.Context, playlistID string) (bool, error)
	IsFavorite(playlistID string) (bool, error)
	Favorites() ([]Playlist, error)
	RecordSession(ctx context.Context, playlistID string) (Session, error)
	RecentSessions(limit int) ([]Session, error)
	ClearHistory(ctx context.Context) error
	Close() error
}

// Verify Store implements Interface at compile time.
var _ Interface = (*Store)(nil)
