package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/affirm/internal/db"
)

type UIState struct {
	Tab           string // tab label, e.g. "Explore"
	ExploreFilter string
	Notifications bool
	IconStyle     string // "nerd", "unicode" or "none"; empty keeps the config
}

func getUI(db *sql.DB) (*UIState, error) {
	row := db.QueryRow(`
		SELECT tab, explore_filter, notifications, icon_style
		FROM ui_state WHERE id = 1
	`)

	var state UIState
	var filter, iconStyle sql.NullString

	err := row.Scan(&state.Tab, &filter, &state.Notifications, &iconStyle)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.ExploreFilter = dbutil.NullStringValue(filter)
	state.IconStyle = dbutil.NullStringValue(iconStyle)

	return &state, nil
}

func saveUI(db *sql.DB, state UIState) error {
	_, err := db.Exec(`
		INSERT INTO ui_state (id, tab, explore_filter, notifications, icon_style)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			tab = excluded.tab,
			explore_filter = excluded.explore_filter,
			notifications = excluded.notifications,
			icon_style = excluded.icon_style
	`, state.Tab, dbutil.NullString(state.ExploreFilter), dbutil.BoolInt(state.Notifications),
		dbutil.NullString(state.IconStyle))

	return err
}
