// Package catalog stores the affirmation content (categories, playlists and
// their affirmations) in sqlite along with the user's favorites and recent
// sessions. It is the sequence.Provider of the player.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/affirm/internal/db"
	"github.com/llehouerou/affirm/internal/sequence"
)

const (
	appName    = "affirm"
	dbFileName = "affirm.db"

	// maxSessions bounds the recent sessions history.
	maxSessions = 50
)

// Store is the sqlite-backed catalog.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens the catalog at path, or at the XDG data location when path is
// empty, creating the schema if needed.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		p, err := xdg.DataFile(filepath.Join(appName, dbFileName))
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s, err := New(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database. Used directly by tests with ":memory:".
func New(db *sql.DB, log zerolog.Logger) (*Store, error) {
	// One connection: sqlite serializes writers anyway and ":memory:"
	// databases are per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying database.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Import replaces all content with pack. Favorites and sessions are kept.
func (s *Store) Import(ctx context.Context, pack Pack) error {
	if err := pack.Validate(); err != nil {
		return err
	}
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, stmt := range []string{
			`DELETE FROM affirmations`,
			`DELETE FROM playlists`,
			`DELETE FROM categories`,
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		for i, c := range pack.Categories {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO categories (id, position, title, emoji, color)
				VALUES (?, ?, ?, ?, ?)
			`, c.ID, i, c.Title, dbutil.NullString(c.Emoji), dbutil.NullString(c.Color))
			if err != nil {
				return fmt.Errorf("category %q: %w", c.ID, err)
			}
		}

		for i, p := range pack.Playlists {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO playlists (id, position, title, description, duration, cover, category_id, section)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, p.ID, i, p.Title, dbutil.NullString(p.Description), dbutil.NullString(p.Duration),
				dbutil.NullString(p.Cover), dbutil.NullString(p.Category), dbutil.NullString(p.Section))
			if err != nil {
				return fmt.Errorf("playlist %q: %w", p.ID, err)
			}
			for j, a := range p.Affirmations {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO affirmations (playlist_id, id, position, text, duration)
					VALUES (?, ?, ?, ?, ?)
				`, p.ID, a.ID, j, a.Text, dbutil.NullString(a.Duration))
				if err != nil {
					return fmt.Errorf("affirmation %q/%q: %w", p.ID, a.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info().
		Int("categories", len(pack.Categories)).
		Int("playlists", len(pack.Playlists)).
		Msg("content imported")
	return nil
}

// IsEmpty reports whether no playlists are loaded.
func (s *Store) IsEmpty() (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM playlists`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

const playlistColumns = `
	p.id, p.title, p.description, p.duration, p.cover, p.category_id, p.section,
	(SELECT COUNT(*) FROM affirmations a WHERE a.playlist_id = p.id),
	EXISTS (SELECT 1 FROM favorites f WHERE f.playlist_id = p.id)
`

func scanPlaylist(sc interface{ Scan(...any) error }) (Playlist, error) {
	var (
		p                                      Playlist
		desc, dur, cover, category, sectionCol sql.NullString
	)
	if err := sc.Scan(&p.ID, &p.Title, &desc, &dur, &cover, &category, &sectionCol,
		&p.Count, &p.Favorite); err != nil {
		return Playlist{}, err
	}
	p.Description = dbutil.NullStringValue(desc)
	p.Duration = dbutil.NullStringValue(dur)
	p.Cover = dbutil.NullStringValue(cover)
	p.CategoryID = dbutil.NullStringValue(category)
	p.Section = Section(dbutil.NullStringValue(sectionCol))
	return p, nil
}

func (s *Store) queryPlaylists(query string, args ...any) ([]Playlist, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Playlists lists every playlist in pack order.
func (s *Store) Playlists() ([]Playlist, error) {
	return s.queryPlaylists(`SELECT ` + playlistColumns + ` FROM playlists p ORDER BY p.position`)
}

// PlaylistsBySection lists the playlists of one home/explore section.
func (s *Store) PlaylistsBySection(section Section) ([]Playlist, error) {
	return s.queryPlaylists(`SELECT `+playlistColumns+`
		FROM playlists p WHERE p.section = ? ORDER BY p.position`, string(section))
}

// PlaylistsByCategory lists the playlists of a category.
func (s *Store) PlaylistsByCategory(categoryID string) ([]Playlist, error) {
	return s.queryPlaylists(`SELECT `+playlistColumns+`
		FROM playlists p WHERE p.category_id = ? ORDER BY p.position`, categoryID)
}

// Playlist returns a playlist with its affirmations.
func (s *Store) Playlist(id string) (Playlist, error) {
	row := s.db.QueryRow(`SELECT `+playlistColumns+` FROM playlists p WHERE p.id = ?`, id)
	p, err := scanPlaylist(row)
	if err == sql.ErrNoRows {
		return Playlist{}, fmt.Errorf("playlist %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Playlist{}, err
	}

	rows, err := s.db.Query(`
		SELECT id, text, duration FROM affirmations
		WHERE playlist_id = ? ORDER BY position
	`, id)
	if err != nil {
		return Playlist{}, err
	}
	defer rows.Close()

	p.Affirmations = make([]Affirmation, 0, p.Count)
	for rows.Next() {
		var (
			a   Affirmation
			dur sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Text, &dur); err != nil {
			return Playlist{}, err
		}
		a.Duration = dbutil.NullStringValue(dur)
		p.Affirmations = append(p.Affirmations, a)
	}
	return p, rows.Err()
}

// Sequence implements sequence.Provider.
func (s *Store) Sequence(playlistID string) (sequence.Sequence, error) {
	p, err := s.Playlist(playlistID)
	if err != nil {
		return sequence.Sequence{}, err
	}
	return p.Sequence()
}

// Sequence converts the playlist's affirmations to a playable sequence.
func (p Playlist) Sequence() (sequence.Sequence, error) {
	items := make([]sequence.Item, len(p.Affirmations))
	for i, a := range p.Affirmations {
		items[i] = sequence.Item{ID: a.ID, Text: a.Text}
	}
	return sequence.New(items)
}

// Categories lists the explore grid tiles with their playlist counts.
func (s *Store) Categories() ([]Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.title, c.emoji, c.color,
			(SELECT COUNT(*) FROM playlists p WHERE p.category_id = c.id)
		FROM categories c ORDER BY c.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var (
			c            Category
			emoji, color sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Title, &emoji, &color, &c.Count); err != nil {
			return nil, err
		}
		c.Emoji = dbutil.NullStringValue(emoji)
		c.Color = dbutil.NullStringValue(color)
		out = append(out, c)
	}
	return out, rows.Err()
}

// Category returns one category.
func (s *Store) Category(id string) (Category, error) {
	cats, err := s.Categories()
	if err != nil {
		return Category{}, err
	}
	for _, c := range cats {
		if c.ID == id {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
}

// AffirmationHit is an affirmation matched outside its playlist.
type AffirmationHit struct {
	Affirmation
	PlaylistID    string
	PlaylistTitle string
	Index         int
}

// Affirmations lists every affirmation with its playlist, for search.
func (s *Store) Affirmations() ([]AffirmationHit, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.text, a.duration, a.position, p.id, p.title
		FROM affirmations a JOIN playlists p ON p.id = a.playlist_id
		ORDER BY p.position, a.position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AffirmationHit
	for rows.Next() {
		var (
			h   AffirmationHit
			dur sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.Text, &dur, &h.Index, &h.PlaylistID, &h.PlaylistTitle); err != nil {
			return nil, err
		}
		h.Duration = dbutil.NullStringValue(dur)
		out = append(out, h)
	}
	return out, rows.Err()
}
