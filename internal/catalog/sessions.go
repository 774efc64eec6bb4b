package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	dbutil "github.com/llehouerou/affirm/internal/db"
)

// RecordSession notes that playlistID was opened in the player. History is
// capped at maxSessions entries.
func (s *Store) RecordSession(ctx context.Context, playlistID string) (Session, error) {
	sess := Session{
		ID:         uuid.NewString(),
		PlaylistID: playlistID,
		OpenedAt:   time.Now().Truncate(time.Second),
	}
	err := dbutil.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `SELECT title FROM playlists WHERE id = ?`, playlistID).
			Scan(&sess.Title)
		if err == sql.ErrNoRows {
			return fmt.Errorf("playlist %q: %w", playlistID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (id, playlist_id, opened_at) VALUES (?, ?, ?)`,
			sess.ID, sess.PlaylistID, sess.OpenedAt.Unix(),
		); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			DELETE FROM sessions WHERE id NOT IN (
				SELECT id FROM sessions ORDER BY opened_at DESC, rowid DESC LIMIT ?
			)
		`, maxSessions)
		return err
	})
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

// RecentSessions returns the latest session of each distinct playlist,
// newest first, at most limit entries.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	rows, err := s.db.Query(`
		SELECT s.id, s.playlist_id, p.title, s.opened_at
		FROM sessions s JOIN playlists p ON p.id = s.playlist_id
		WHERE s.rowid = (
			SELECT s2.rowid FROM sessions s2 WHERE s2.playlist_id = s.playlist_id
			ORDER BY s2.opened_at DESC, s2.rowid DESC LIMIT 1
		)
		ORDER BY s.opened_at DESC, s.rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var (
			sess   Session
			opened int64
		)
		if err := rows.Scan(&sess.ID, &sess.PlaylistID, &sess.Title, &opened); err != nil {
			return nil, err
		}
		sess.OpenedAt = dbutil.UnixTime(opened)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// ClearHistory forgets every recorded session. Favorites are kept.
func (s *Store) ClearHistory(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	return err
}
