package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/llehouerou/affirm/internal/sequence"
)

// setupTestStore creates an in-memory catalog.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	s, err := New(db, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// setupLoadedStore creates an in-memory catalog holding the built-in pack.
func setupLoadedStore(t *testing.T) *Store {
	t.Helper()
	s := setupTestStore(t)
	pack, err := DefaultPack()
	require.NoError(t, err)
	require.NoError(t, s.Import(context.Background(), pack))
	return s
}

func smallPack() Pack {
	return Pack{
		Categories: []PackCategory{{ID: "calm", Title: "Calm"}},
		Playlists: []PackPlaylist{
			{
				ID: "a", Title: "Alpha", Category: "calm", Section: "featured",
				Affirmations: []PackAffirmation{
					{ID: "a1", Text: "one"},
					{ID: "a2", Text: "two", Duration: "5 sec"},
				},
			},
			{ID: "b", Title: "Beta", Section: "money"},
		},
	}
}

func TestStore_EmptyUntilImport(t *testing.T) {
	s := setupTestStore(t)

	empty, err := s.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, s.Import(context.Background(), smallPack()))
	empty, err = s.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestStore_Playlists(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	all, err := s.Playlists()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, 2, all[0].Count)
	assert.Equal(t, "calm", all[0].CategoryID)
	assert.Nil(t, all[0].Affirmations, "listings do not load affirmations")
	assert.Equal(t, 0, all[1].Count)
	assert.Empty(t, all[1].CategoryID)

	money, err := s.PlaylistsBySection(SectionMoney)
	require.NoError(t, err)
	require.Len(t, money, 1)
	assert.Equal(t, "b", money[0].ID)

	calm, err := s.PlaylistsByCategory("calm")
	require.NoError(t, err)
	require.Len(t, calm, 1)
	assert.Equal(t, "a", calm[0].ID)
}

func TestStore_Playlist(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	p, err := s.Playlist("a")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Title)
	assert.Equal(t, []Affirmation{
		{ID: "a1", Text: "one"},
		{ID: "a2", Text: "two", Duration: "5 sec"},
	}, p.Affirmations)

	_, err = s.Playlist("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Sequence(t *testing.T) {
	s := setupLoadedStore(t)

	var provider sequence.Provider = s
	seq, err := provider.Sequence("mindful-moments")
	require.NoError(t, err)
	assert.Equal(t, 25, seq.Len())
	first, ok := seq.At(0)
	require.True(t, ok)
	assert.Equal(t, "dt1", first.ID)
	assert.Equal(t, "I embrace this moment with peace and calm.", first.Text)

	_, err = provider.Sequence("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_EmptyPlaylistSequence(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	seq, err := s.Sequence("b")
	require.NoError(t, err)
	assert.True(t, seq.IsEmpty())
}

func TestStore_Categories(t *testing.T) {
	s := setupLoadedStore(t)

	cats, err := s.Categories()
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "Self Love", cats[0].Title)
	assert.Equal(t, "💝", cats[0].Emoji)
	assert.Positive(t, cats[0].Count)

	c, err := s.Category("healing")
	require.NoError(t, err)
	assert.Equal(t, "Healing", c.Title)

	_, err = s.Category("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Affirmations(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	hits, err := s.Affirmations()
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a2", hits[1].ID)
	assert.Equal(t, "Alpha", hits[1].PlaylistTitle)
	assert.Equal(t, 1, hits[1].Index)
}

func TestStore_ImportReplacesContent(t *testing.T) {
	s := setupLoadedStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	all, err := s.Playlists()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	cats, err := s.Categories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestStore_ImportRejectsInvalidPack(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Import(context.Background(), smallPack()))

	bad := smallPack()
	bad.Playlists = append(bad.Playlists, PackPlaylist{ID: "a", Title: "Again"})
	err := s.Import(context.Background(), bad)
	require.ErrorIs(t, err, ErrInvalidPack)

	// Previous content is untouched.
	all, err := s.Playlists()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ToggleFavorite(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Import(ctx, smallPack()))

	fav, err := s.ToggleFavorite(ctx, "a")
	require.NoError(t, err)
	assert.True(t, fav)

	is, err := s.IsFavorite("a")
	require.NoError(t, err)
	assert.True(t, is)

	p, err := s.Playlist("a")
	require.NoError(t, err)
	assert.True(t, p.Favorite)

	favs, err := s.Favorites()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "a", favs[0].ID)

	fav, err = s.ToggleFavorite(ctx, "a")
	require.NoError(t, err)
	assert.False(t, fav)
	favs, err = s.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favs)

	_, err = s.ToggleFavorite(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_FavoritesSurviveReimport(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Import(ctx, smallPack()))
	_, err := s.ToggleFavorite(ctx, "b")
	require.NoError(t, err)

	// Drop "b" from the content: the favorite is hidden, not lost.
	pack := smallPack()
	pack.Playlists = pack.Playlists[:1]
	require.NoError(t, s.Import(ctx, pack))
	favs, err := s.Favorites()
	require.NoError(t, err)
	assert.Empty(t, favs)

	require.NoError(t, s.Import(ctx, smallPack()))
	favs, err = s.Favorites()
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, "b", favs[0].ID)
}

func TestStore_RecordSession(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Import(ctx, smallPack()))

	first, err := s.RecordSession(ctx, "a")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Alpha", first.Title)

	_, err = s.RecordSession(ctx, "b")
	require.NoError(t, err)
	_, err = s.RecordSession(ctx, "a")
	require.NoError(t, err)

	recent, err := s.RecentSessions(10)
	require.NoError(t, err)
	require.Len(t, recent, 2, "one entry per playlist")
	assert.Equal(t, "a", recent[0].PlaylistID)
	assert.Equal(t, "b", recent[1].PlaylistID)

	recent, err = s.RecentSessions(1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, err = s.RecordSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ClearHistory(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Import(ctx, smallPack()))
	_, err := s.RecordSession(ctx, "a")
	require.NoError(t, err)
	_, err = s.ToggleFavorite(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, s.ClearHistory(ctx))

	recent, err := s.RecentSessions(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
	favs, err := s.Favorites()
	require.NoError(t, err)
	assert.Len(t, favs, 1, "favorites survive")
}

func TestStore_SessionHistoryIsCapped(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Import(ctx, smallPack()))

	for range maxSessions + 10 {
		_, err := s.RecordSession(ctx, "a")
		require.NoError(t, err)
	}
	var n int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n))
	assert.Equal(t, maxSessions, n)
}

func TestStore_CanceledImport(t *testing.T) {
	s := setupTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Import(ctx, smallPack())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
