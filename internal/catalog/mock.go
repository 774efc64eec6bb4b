package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/affirm/internal/sequence"
)

// Mock is an in-memory test double for Store.
type Mock struct {
	mu        sync.Mutex
	pack      Pack
	favorites []string // newest first
	sessions  []Session
	closed    bool
}

// NewMock creates a mock holding pack.
func NewMock(pack Pack) *Mock {
	return &Mock{pack: pack}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

func (m *Mock) Import(_ context.Context, pack Pack) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pack = pack
	return nil
}

func (m *Mock) toPlaylist(p PackPlaylist, full bool) Playlist {
	out := Playlist{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Duration:    p.Duration,
		Cover:       p.Cover,
		CategoryID:  p.Category,
		Section:     Section(p.Section),
		Count:       len(p.Affirmations),
		Favorite:    slices.Contains(m.favorites, p.ID),
	}
	if full {
		out.Affirmations = make([]Affirmation, len(p.Affirmations))
		for i, a := range p.Affirmations {
			out.Affirmations[i] = Affirmation(a)
		}
	}
	return out
}

func (m *Mock) filter(keep func(PackPlaylist) bool) []Playlist {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Playlist
	for _, p := range m.pack.Playlists {
		if keep(p) {
			out = append(out, m.toPlaylist(p, false))
		}
	}
	return out
}

func (m *Mock) Playlists() ([]Playlist, error) {
	return m.filter(func(PackPlaylist) bool { return true }), nil
}

func (m *Mock) PlaylistsBySection(section Section) ([]Playlist, error) {
	return m.filter(func(p PackPlaylist) bool { return p.Section == string(section) }), nil
}

func (m *Mock) PlaylistsByCategory(categoryID string) ([]Playlist, error) {
	return m.filter(func(p PackPlaylist) bool { return p.Category == categoryID }), nil
}

func (m *Mock) Playlist(id string) (Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pack.Playlists {
		if p.ID == id {
			return m.toPlaylist(p, true), nil
		}
	}
	return Playlist{}, fmt.Errorf("playlist %q: %w", id, ErrNotFound)
}

func (m *Mock) Sequence(playlistID string) (sequence.Sequence, error) {
	p, err := m.Playlist(playlistID)
	if err != nil {
		return sequence.Sequence{}, err
	}
	return p.Sequence()
}

func (m *Mock) Categories() ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Category, 0, len(m.pack.Categories))
	for _, c := range m.pack.Categories {
		cat := Category{ID: c.ID, Title: c.Title, Emoji: c.Emoji, Color: c.Color}
		for _, p := range m.pack.Playlists {
			if p.Category == c.ID {
				cat.Count++
			}
		}
		out = append(out, cat)
	}
	return out, nil
}

func (m *Mock) Category(id string) (Category, error) {
	cats, _ := m.Categories()
	for _, c := range cats {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
}

func (m *Mock) Affirmations() ([]AffirmationHit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []AffirmationHit
	for _, p := range m.pack.Playlists {
		for i, a := range p.Affirmations {
			out = append(out, AffirmationHit{
				Affirmation:   Affirmation(a),
				PlaylistID:    p.ID,
				PlaylistTitle: p.Title,
				Index:         i,
			})
		}
	}
	return out, nil
}

func (m *Mock) ToggleFavorite(_ context.Context, playlistID string) (bool, error) {
	if _, err := m.Playlist(playlistID); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := slices.Index(m.favorites, playlistID); i >= 0 {
		m.favorites = slices.Delete(m.favorites, i, i+1)
		return false, nil
	}
	m.favorites = slices.Insert(m.favorites, 0, playlistID)
	return true, nil
}

func (m *Mock) IsFavorite(playlistID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.favorites, playlistID), nil
}

func (m *Mock) Favorites() ([]Playlist, error) {
	m.mu.Lock()
	ids := slices.Clone(m.favorites)
	m.mu.Unlock()
	out := make([]Playlist, 0, len(ids))
	for _, id := range ids {
		if p, err := m.Playlist(id); err == nil {
			p.Affirmations = nil
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *Mock) RecordSession(_ context.Context, playlistID string) (Session, error) {
	p, err := m.Playlist(playlistID)
	if err != nil {
		return Session{}, err
	}
	sess := Session{ID: uuid.NewString(), PlaylistID: p.ID, Title: p.Title, OpenedAt: time.Now()}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = slices.DeleteFunc(m.sessions, func(s Session) bool { return s.PlaylistID == p.ID })
	m.sessions = slices.Insert(m.sessions, 0, sess)
	return sess, nil
}

func (m *Mock) RecentSessions(limit int) ([]Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	limit = max(0, min(limit, len(m.sessions)))
	return slices.Clone(m.sessions[:limit]), nil
}

func (m *Mock) ClearHistory(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = nil
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
