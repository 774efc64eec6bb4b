package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	dbutil "github.com/llehouerou/affirm/internal/db"
)

// ToggleFavorite flips the favorite flag of a playlist and returns the new
// value.
func (s *Store) ToggleFavorite(ctx context.Context, playlistID string) (bool, error) {
	var favorite bool
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM playlists WHERE id = ?)`, playlistID,
		).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("playlist %q: %w", playlistID, ErrNotFound)
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE playlist_id = ?`, playlistID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			favorite = false
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO favorites (playlist_id, added_at) VALUES (?, ?)`,
			playlistID, time.Now().Unix())
		favorite = err == nil
		return err
	})
	return favorite, err
}

// IsFavorite reports whether a playlist is a favorite.
func (s *Store) IsFavorite(playlistID string) (bool, error) {
	var fav bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE playlist_id = ?)`, playlistID,
	).Scan(&fav)
	return fav, err
}

// Favorites lists favorite playlists, most recently added first. Favorites
// whose playlist disappeared from the content are skipped.
func (s *Store) Favorites() ([]Playlist, error) {
	return s.queryPlaylists(`SELECT ` + playlistColumns + `
		FROM playlists p JOIN favorites fav ON fav.playlist_id = p.id
		ORDER BY fav.added_at DESC, p.position`)
}
