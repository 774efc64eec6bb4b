package playback

import (
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/affirm/internal/sequence"
)

func TestHost_CurrentEmpty(t *testing.T) {
	h := NewHost(Options{})

	_, ok := h.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, h.TogglePlayPause(), ErrNoSession)
	assert.NoError(t, h.Close(), "Close with no session should be a no-op")
}

func TestHost_OpenReplacesPreviousSession(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := NewHost(Options{Interval: testInterval})
		defer h.Close()

		first := h.Open(OpenRequest{PlaylistID: "a", Sequence: fiveItems(), Seeker: NewMockSeeker()})
		first.TogglePlayPause()
		second := h.Open(OpenRequest{PlaylistID: "b", Sequence: fiveItems(), Seeker: NewMockSeeker()})

		assert.True(t, first.Closed(), "previous session must be closed")
		assert.False(t, first.IsPlaying())

		cur, ok := h.Current()
		require.True(t, ok)
		assert.Same(t, second, cur)
		assert.Equal(t, "b", cur.Info().PlaylistID)

		advance(3 * testInterval)
		assert.Equal(t, 0, first.Index(), "closed session must not advance")
	})
}

func TestHost_OpenAppliesDefaultsAndStartIndex(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := NewHost(Options{Interval: testInterval})
		defer h.Close()
		seeker := NewMockSeeker()

		s := h.Open(OpenRequest{
			PlaylistID: "mindful",
			Title:      "Mindful Moments",
			Sequence:   fiveItems(),
			StartIndex: 2,
			Seeker:     seeker,
		})

		assert.Equal(t, 2, s.Index())
		assert.Equal(t, "Mindful Moments", s.Info().Title)
		assert.NotEmpty(t, s.Info().ID)

		require.NoError(t, h.TogglePlayPause())
		advance(testInterval)
		assert.Equal(t, 3, s.Index())
	})
}

func TestHost_OpenedKeepsLatest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := NewHost(Options{})
		defer h.Close()
		seq := sequence.MustNew(sequence.Item{ID: "x"})

		h.Open(OpenRequest{PlaylistID: "one", Sequence: seq})
		latest := h.Open(OpenRequest{PlaylistID: "two", Sequence: seq})

		select {
		case s := <-h.Opened():
			assert.Same(t, latest, s)
		default:
			t.Fatal("expected an opened session")
		}
	})
}

func TestHost_CloseTwice(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := NewHost(Options{})
		s := h.Open(OpenRequest{Sequence: fiveItems()})

		require.NoError(t, h.Close())
		require.NoError(t, h.Close())
		assert.True(t, s.Closed())
		_, ok := h.Current()
		assert.False(t, ok)
	})
}
