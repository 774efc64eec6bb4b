package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionBack        Action = "back"
	ActionNextTab     Action = "next_tab"
	ActionPrevTab     Action = "prev_tab"
	ActionTabHome     Action = "tab_home"
	ActionTabExplore  Action = "tab_explore"
	ActionTabFavs     Action = "tab_favorites"
	ActionTabSearch   Action = "tab_search"
	ActionTabSettings Action = "tab_settings"
	ActionShowPlayer  Action = "show_player"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionSelect    Action = "select"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionNextItem    Action = "next_item"
	ActionPrevItem    Action = "prev_item"
	ActionFirstItem   Action = "first_item"
	ActionLastItem    Action = "last_item"
	ActionHidePlayer  Action = "hide_player"
	ActionClosePlayer Action = "close_player"

	// Content actions
	ActionToggleFavorite Action = "toggle_favorite"
	ActionPlayFrom       Action = "play_from"
	ActionNextFilter     Action = "next_filter"
)
